package game

// Autopilot picks a heading from a frame snapshot. Rules in priority order:
//  1. head off the board: steer back toward the board center
//  2. food present: step toward the nearest item, avoiding the body
//  3. otherwise keep the current heading
type Autopilot struct {
	board Grid
}

// NewAutopilot creates an autopilot for the given board
func NewAutopilot(board Grid) *Autopilot {
	return &Autopilot{board: board}
}

// candidate order for tie-breaking after the current heading
var headingOrder = []Heading{Up, Down, Left, Right}

// Decide returns the heading to use on the next tick.
func (a *Autopilot) Decide(f Frame) Heading {
	if len(f.Chain) == 0 {
		return f.Heading
	}
	head := f.Head()

	// --- Priority 1: boundary ---
	if !a.board.InBounds(head) {
		return a.steerToward(f, a.board.Center())
	}

	// --- Priority 2: nearest food ---
	if len(f.Food) > 0 {
		target := f.Food[0].Cell
		best := head.Manhattan(target)
		for _, item := range f.Food[1:] {
			if d := head.Manhattan(item.Cell); d < best {
				best = d
				target = item.Cell
			}
		}
		return a.steerToward(f, target)
	}

	// --- Priority 3: keep going ---
	return f.Heading
}

// steerToward scores every legal heading by distance to target after one
// step. Landing on the body costs a full board of distance. Ties go to the
// current heading, then Up, Down, Left, Right.
func (a *Autopilot) steerToward(f Frame, target Cell) Heading {
	head := f.Head()
	body := make(map[Cell]bool, len(f.Chain))
	// The tail cell moves away this tick unless the snake is growing;
	// treat it as occupied anyway.
	for _, c := range f.Chain[1:] {
		body[c] = true
	}

	penalty := a.board.Cells() + 1
	score := func(h Heading) int {
		next := h.Apply(head)
		s := next.Manhattan(target)
		if body[next] {
			s += penalty
		}
		return s
	}

	best := f.Heading
	bestScore := score(best)
	for _, h := range headingOrder {
		if h == f.Heading {
			continue
		}
		if len(f.Chain) > 1 && h == f.Heading.Opposite() {
			continue
		}
		if s := score(h); s < bestScore {
			best, bestScore = h, s
		}
	}
	return best
}
