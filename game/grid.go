package game

import "fmt"

// Cell is an integer grid coordinate. Coordinates are signed so a snake
// that leaves the board keeps moving instead of wrapping or underflowing.
type Cell struct {
	X int
	Y int
}

// String returns "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Less orders cells by X, then Y.
func (c Cell) Less(o Cell) bool {
	if c.X != o.X {
		return c.X < o.X
	}
	return c.Y < o.Y
}

// Manhattan returns the grid distance to another cell.
func (c Cell) Manhattan(o Cell) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

// Grid holds fixed board dimensions
type Grid struct {
	Width  int
	Height int
}

// NewGrid creates a board of the given size
func NewGrid(width, height int) Grid {
	return Grid{Width: width, Height: height}
}

// InBounds reports whether c lies in [0,Width) x [0,Height).
// Movement never calls it; renderers use it to cull cells off the board.
func (g Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Center returns the middle cell (rounded down).
func (g Grid) Center() Cell {
	return Cell{X: g.Width / 2, Y: g.Height / 2}
}

// Cells returns the number of cells on the board
func (g Grid) Cells() int {
	return g.Width * g.Height
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
