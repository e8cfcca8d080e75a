package game

// EngineState is Idle between ticks and Advancing while a step runs.
type EngineState int

const (
	Idle EngineState = iota
	Advancing
)

// StepResult reports what one tick did to the chain
type StepResult struct {
	Head          Cell
	Ate           bool
	Consumed      FoodID // zero unless Ate
	CreditAccrued int    // growth credit after the match, before it was spent
	Grew          bool   // tail kept this tick
	Length        int
}

// SnakeEngine owns the chain of occupied cells. Index 0 is the head.
type SnakeEngine struct {
	chain        []Cell
	growthCredit int
	state        EngineState
}

// NewSnakeEngine creates a one-cell chain at start
func NewSnakeEngine(start Cell) *SnakeEngine {
	return &SnakeEngine{chain: []Cell{start}}
}

// Head returns the head cell
func (e *SnakeEngine) Head() Cell {
	return e.chain[0]
}

// Len returns the chain length
func (e *SnakeEngine) Len() int {
	return len(e.chain)
}

// GrowthCredit returns the number of pending tail-retention ticks
func (e *SnakeEngine) GrowthCredit() int {
	return e.growthCredit
}

// State returns Idle unless called from inside Step.
func (e *SnakeEngine) State() EngineState {
	return e.state
}

// Chain returns a head-first copy of the occupied cells.
func (e *SnakeEngine) Chain() []Cell {
	out := make([]Cell, len(e.chain))
	copy(out, e.chain)
	return out
}

// Step advances the chain one cell in heading and checks the new head
// against food. Only the first matching item (in the given order) is
// consumed. A consumed item adds one growth credit, and any credit is spent
// in place of dropping the tail, so an eating tick grows the chain by one.
// Walls and self overlap are not checked.
func (e *SnakeEngine) Step(heading Heading, food []FoodItem) StepResult {
	e.state = Advancing
	defer func() { e.state = Idle }()

	newHead := heading.Apply(e.Head())

	// Prepend new head
	e.chain = append(e.chain, Cell{})
	copy(e.chain[1:], e.chain)
	e.chain[0] = newHead

	res := StepResult{Head: newHead}
	for _, f := range food {
		if f.Cell == newHead {
			res.Ate = true
			res.Consumed = f.ID
			e.growthCredit++
			break
		}
	}
	res.CreditAccrued = e.growthCredit

	if e.growthCredit > 0 {
		e.growthCredit--
		res.Grew = true
	} else {
		e.chain = e.chain[:len(e.chain)-1]
	}
	res.Length = len(e.chain)
	return res
}
