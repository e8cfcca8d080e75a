package game

import (
	"math/rand"

	"github.com/google/uuid"
)

// FoodID identifies one food item. Ids are never reused.
type FoodID string

// FoodItem is an edible cell
type FoodItem struct {
	ID   FoodID
	Cell Cell
}

func newFoodID() FoodID {
	return FoodID(uuid.New().String())
}

// FoodSpawner owns the active food items in creation order.
type FoodSpawner struct {
	items     []FoodItem
	spawnArea Grid
	intn      func(n int) int
}

// SpawnerOption configures a FoodSpawner
type SpawnerOption func(*FoodSpawner)

// WithSpawnArea sets the area respawned food is drawn from.
func WithSpawnArea(area Grid) SpawnerOption {
	return func(s *FoodSpawner) {
		if area.Width > 0 && area.Height > 0 {
			s.spawnArea = area
		}
	}
}

// WithIntn replaces the process-wide random draw, e.g. for deterministic tests.
func WithIntn(intn func(n int) int) SpawnerOption {
	return func(s *FoodSpawner) {
		if intn != nil {
			s.intn = intn
		}
	}
}

// NewFoodSpawner creates an empty spawner drawing from the fixed 10x10 area
func NewFoodSpawner(opts ...SpawnerOption) *FoodSpawner {
	s := &FoodSpawner{
		spawnArea: NewGrid(FoodSpawnWidth, FoodSpawnHeight),
		intn:      rand.Intn,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SpawnInitial places one food item at cell and returns it.
func (s *FoodSpawner) SpawnInitial(cell Cell) FoodItem {
	return s.add(cell)
}

// OnConsumed removes the item with id and spawns a replacement at a random
// cell of the spawn area. The new cell is not checked against the snake or
// other food. Returns the new item, or false if id is not active.
func (s *FoodSpawner) OnConsumed(id FoodID) (FoodItem, bool) {
	idx := -1
	for i, f := range s.items {
		if f.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return FoodItem{}, false
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)

	cell := Cell{
		X: s.intn(s.spawnArea.Width),
		Y: s.intn(s.spawnArea.Height),
	}
	return s.add(cell), true
}

// Items returns a creation-ordered snapshot of the active food.
func (s *FoodSpawner) Items() []FoodItem {
	out := make([]FoodItem, len(s.items))
	copy(out, s.items)
	return out
}

// Cells returns the active food positions in creation order
func (s *FoodSpawner) Cells() []Cell {
	out := make([]Cell, len(s.items))
	for i, f := range s.items {
		out[i] = f.Cell
	}
	return out
}

// Len returns the number of active food items
func (s *FoodSpawner) Len() int {
	return len(s.items)
}

func (s *FoodSpawner) add(cell Cell) FoodItem {
	f := FoodItem{ID: newFoodID(), Cell: cell}
	s.items = append(s.items, f)
	return f
}
