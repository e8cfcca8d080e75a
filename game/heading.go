package game

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownHeading is returned when a heading name cannot be parsed.
var ErrUnknownHeading = errors.New("unknown heading")

// Heading is one of the four grid directions
type Heading int

const (
	Up Heading = iota
	Down
	Left
	Right
)

// Delta returns the unit displacement for h. Up is +Y.
func (h Heading) Delta() (dx, dy int) {
	switch h {
	case Up:
		return 0, 1
	case Down:
		return 0, -1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// Apply returns the cell one step from c in direction h.
// No bounds check is performed.
func (h Heading) Apply(c Cell) Cell {
	dx, dy := h.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Opposite returns the reverse heading
func (h Heading) Opposite() Heading {
	switch h {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	}
	return Left
}

// String returns the single-letter wire form ("u", "d", "l", "r").
func (h Heading) String() string {
	switch h {
	case Up:
		return "u"
	case Down:
		return "d"
	case Left:
		return "l"
	case Right:
		return "r"
	}
	return fmt.Sprintf("Heading(%d)", int(h))
}

// ParseHeading accepts the wire letters and full names, case-insensitive.
func ParseHeading(s string) (Heading, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "u", "up":
		return Up, nil
	case "d", "down":
		return Down, nil
	case "l", "left":
		return Left, nil
	case "r", "right":
		return Right, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownHeading, s)
}

// DirectionController holds the heading the next tick will use.
type DirectionController struct {
	heading Heading
}

// NewDirectionController starts with the given heading
func NewDirectionController(initial Heading) *DirectionController {
	return &DirectionController{heading: initial}
}

// SetHeading overwrites the current heading. Reversals are accepted; the
// engine does not detect the resulting self overlap.
func (d *DirectionController) SetHeading(h Heading) {
	d.heading = h
}

// CurrentHeading returns the most recent heading set before this call.
func (d *DirectionController) CurrentHeading() Heading {
	return d.heading
}
