package game

import (
	"errors"
	"testing"
)

func TestHeadingApply(t *testing.T) {
	c := Cell{X: 4, Y: 7}
	want := map[Heading]Cell{
		Right: {5, 7},
		Left:  {3, 7},
		Up:    {4, 8},
		Down:  {4, 6},
	}
	for h, w := range want {
		if got := h.Apply(c); got != w {
			t.Errorf("%v.Apply(%v)=%v want %v", h, c, got, w)
		}
	}
}

func TestHeadingApplyLeavesBoard(t *testing.T) {
	if got := Left.Apply(Cell{0, 0}); got != (Cell{-1, 0}) {
		t.Fatalf("got %v", got)
	}
	if got := Down.Apply(Cell{0, 0}); got != (Cell{0, -1}) {
		t.Fatalf("got %v", got)
	}
}

func TestParseHeading(t *testing.T) {
	for _, s := range []string{"u", "UP", " up "} {
		h, err := ParseHeading(s)
		if err != nil || h != Up {
			t.Fatalf("ParseHeading(%q)=%v,%v", s, h, err)
		}
	}
	for _, h := range headingOrder {
		got, err := ParseHeading(h.String())
		if err != nil || got != h {
			t.Fatalf("round trip %v: %v,%v", h, got, err)
		}
	}
	if _, err := ParseHeading("north"); !errors.Is(err, ErrUnknownHeading) {
		t.Fatalf("want ErrUnknownHeading, got %v", err)
	}
}

func TestOpposite(t *testing.T) {
	for _, h := range headingOrder {
		if h.Opposite().Opposite() != h {
			t.Fatalf("opposite not involutive for %v", h)
		}
		if h.Opposite() == h {
			t.Fatalf("%v is its own opposite", h)
		}
	}
}

func TestDirectionControllerLastWriteWins(t *testing.T) {
	d := NewDirectionController(Right)
	d.SetHeading(Up)
	d.SetHeading(Left) // reversal relative to the start is accepted
	if got := d.CurrentHeading(); got != Left {
		t.Fatalf("heading=%v want l", got)
	}
}
