package game

// RectKind tags a render rectangle
type RectKind string

const (
	RectSnake RectKind = "s"
	RectFood  RectKind = "f"
)

// Rect is a screen rectangle in pixels
type Rect struct {
	X, Y, W, H int
	Kind       RectKind
}

// CellRect maps a cell to its CellPixels square at coordinate * CellPixels.
func CellRect(c Cell) Rect {
	return Rect{
		X: c.X * CellPixels,
		Y: c.Y * CellPixels,
		W: CellPixels,
		H: CellPixels,
	}
}

// Frame is the value snapshot handed to renderers after all logic for a
// frame has run.
type Frame struct {
	GameID  string
	Tick    uint64
	Heading Heading
	Board   Grid
	Chain   []Cell // head first
	Food    []FoodItem
}

// Head returns the chain head
func (f Frame) Head() Cell {
	return f.Chain[0]
}

// Rects returns snake rects (head first) followed by food rects. Cells off
// the board are dropped.
func (f Frame) Rects() []Rect {
	rects := make([]Rect, 0, len(f.Chain)+len(f.Food))
	for _, c := range f.Chain {
		if !f.Board.InBounds(c) {
			continue
		}
		r := CellRect(c)
		r.Kind = RectSnake
		rects = append(rects, r)
	}
	for _, item := range f.Food {
		if !f.Board.InBounds(item.Cell) {
			continue
		}
		r := CellRect(item.Cell)
		r.Kind = RectFood
		rects = append(rects, r)
	}
	return rects
}
