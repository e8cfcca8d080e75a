package game

import (
	"time"

	"github.com/google/uuid"
)

// TickReport describes one fired tick: the heading used, what the step did,
// and the replacement food if something was eaten.
type TickReport struct {
	Tick      uint64
	Heading   Heading
	Step      StepResult
	Respawned bool
	Spawned   FoodItem
}

// World runs the per-frame update: clock, heading read, snake step and
// food respawn, always in that order. It is not safe for concurrent use;
// adapters serialize access.
type World struct {
	ID    string
	board Grid
	clock *Clock
	dir   *DirectionController
	snake *SnakeEngine
	food  *FoodSpawner
	tick  uint64
}

// NewWorld builds the starting position: one chain cell right of center
// heading Right, one food item one cell further right and one up.
func NewWorld(cfg Config) *World {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = BoardWidth, BoardHeight
	}
	board := NewGrid(cfg.Width, cfg.Height)

	opts := []SpawnerOption{WithSpawnArea(cfg.SpawnArea)}
	if cfg.Intn != nil {
		opts = append(opts, WithIntn(cfg.Intn))
	}

	w := &World{
		ID:    uuid.New().String(),
		board: board,
		clock: NewClock(cfg.TickPeriod),
		dir:   NewDirectionController(Right),
		snake: NewSnakeEngine(Cell{X: board.Width/2 + 1, Y: board.Height / 2}),
		food:  NewFoodSpawner(opts...),
	}
	w.food.SpawnInitial(Cell{X: board.Width/2 + 2, Y: board.Height/2 + 1})
	return w
}

// SetHeading records player input for the next tick. Last write wins.
func (w *World) SetHeading(h Heading) {
	w.dir.SetHeading(h)
}

// Heading returns the heading the next tick will use
func (w *World) Heading() Heading {
	return w.dir.CurrentHeading()
}

// Board returns the board dimensions
func (w *World) Board() Grid {
	return w.board
}

// Tick returns the number of ticks fired so far
func (w *World) Tick() uint64 {
	return w.tick
}

// Period returns the tick period
func (w *World) Period() time.Duration {
	return w.clock.Period()
}

// Update advances the clock by one frame's elapsed time and runs every tick
// that became due, in order. Returns nil when no tick fired.
func (w *World) Update(elapsed time.Duration) []TickReport {
	w.clock.Advance(elapsed)
	var reports []TickReport
	for w.clock.TickReady() {
		reports = append(reports, w.step())
	}
	return reports
}

// step runs one whole tick. Food is read by value before the move.
func (w *World) step() TickReport {
	w.tick++
	heading := w.dir.CurrentHeading()
	res := w.snake.Step(heading, w.food.Items())

	rep := TickReport{Tick: w.tick, Heading: heading, Step: res}
	if res.Ate {
		rep.Spawned, rep.Respawned = w.food.OnConsumed(res.Consumed)
	}
	return rep
}

// Frame returns a value snapshot for renderers.
func (w *World) Frame() Frame {
	return Frame{
		GameID:  w.ID,
		Tick:    w.tick,
		Heading: w.dir.CurrentHeading(),
		Board:   w.board,
		Chain:   w.snake.Chain(),
		Food:    w.food.Items(),
	}
}
