package game

import "testing"

func food(id string, x, y int) FoodItem {
	return FoodItem{ID: FoodID(id), Cell: Cell{X: x, Y: y}}
}

func sameChain(t *testing.T, got, want []Cell) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("chain len=%d want=%d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("chain[%d]=%v want=%v (%v)", i, got[i], want[i], got)
		}
	}
}

func TestStep_NoFoodKeepsLength(t *testing.T) {
	e := NewSnakeEngine(Cell{6, 5})
	far := []FoodItem{food("a", 0, 0)}
	for i, h := range []Heading{Right, Up, Up, Left, Down, Right} {
		before := e.Len()
		res := e.Step(h, far)
		if res.Ate {
			t.Fatalf("step %d ate unexpectedly", i)
		}
		if e.Len() != before || res.Length != before {
			t.Fatalf("step %d: len %d -> %d", i, before, e.Len())
		}
	}
	if e.Head() != (Cell{7, 6}) {
		t.Fatalf("head=%v", e.Head())
	}
}

func TestStep_Scenario(t *testing.T) {
	e := NewSnakeEngine(Cell{6, 5})
	apple := []FoodItem{food("apple", 7, 6)}

	res := e.Step(Right, apple)
	if res.Ate || res.Head != (Cell{7, 5}) {
		t.Fatalf("first step: %+v", res)
	}
	sameChain(t, e.Chain(), []Cell{{7, 5}})

	res = e.Step(Up, apple)
	if !res.Ate || res.Consumed != "apple" {
		t.Fatalf("second step should eat: %+v", res)
	}
	if res.CreditAccrued != 1 {
		t.Fatalf("credit at consumption=%d want 1", res.CreditAccrued)
	}
	if !res.Grew {
		t.Fatal("tail should be kept on the eating tick")
	}
	sameChain(t, e.Chain(), []Cell{{7, 6}, {7, 5}})
	if e.GrowthCredit() != 0 {
		t.Fatalf("credit left=%d", e.GrowthCredit())
	}
}

func TestStep_GrowthNetsOneAcrossTwoTicks(t *testing.T) {
	e := NewSnakeEngine(Cell{0, 0})
	e.Step(Right, nil)
	e.Step(Right, nil)
	before := e.Len()

	e.Step(Right, []FoodItem{food("f", 3, 0)})
	e.Step(Right, nil)
	if e.Len() != before+1 {
		t.Fatalf("len=%d want %d", e.Len(), before+1)
	}
	e.Step(Up, nil)
	if e.Len() != before+1 {
		t.Fatalf("len changed without food: %d", e.Len())
	}
}

func TestStep_FirstMatchOnly(t *testing.T) {
	e := NewSnakeEngine(Cell{1, 1})
	items := []FoodItem{food("x", 9, 9), food("first", 2, 1), food("second", 2, 1)}
	res := e.Step(Right, items)
	if res.Consumed != "first" {
		t.Fatalf("consumed=%q want first", res.Consumed)
	}
	if res.CreditAccrued != 1 || e.Len() != 2 {
		t.Fatalf("credit=%d len=%d", res.CreditAccrued, e.Len())
	}
}

func TestStep_ReversalOverlapsWithoutPanic(t *testing.T) {
	e := NewSnakeEngine(Cell{6, 5})
	e.Step(Right, []FoodItem{food("a", 7, 5)})
	sameChain(t, e.Chain(), []Cell{{7, 5}, {6, 5}})

	res := e.Step(Left, nil)
	if res.Head != (Cell{6, 5}) {
		t.Fatalf("head=%v", res.Head)
	}
	sameChain(t, e.Chain(), []Cell{{6, 5}, {7, 5}})

	// Two cells sharing a position is allowed
	e.Step(Right, []FoodItem{food("b", 7, 5)})
	chain := e.Chain()
	if len(chain) != 3 || chain[0] != chain[2] {
		t.Fatalf("expected overlap, chain=%v", chain)
	}
}

func TestStep_LeavesBoardSilently(t *testing.T) {
	e := NewSnakeEngine(Cell{0, 0})
	e.Step(Left, nil)
	e.Step(Down, nil)
	if e.Head() != (Cell{-1, -1}) {
		t.Fatalf("head=%v", e.Head())
	}
}

func TestStep_StateAndChainCopy(t *testing.T) {
	e := NewSnakeEngine(Cell{2, 2})
	if e.State() != Idle {
		t.Fatal("new engine should be idle")
	}
	e.Step(Up, nil)
	if e.State() != Idle {
		t.Fatal("engine should return to idle after a step")
	}
	c := e.Chain()
	c[0] = Cell{99, 99}
	if e.Head() == (Cell{99, 99}) {
		t.Fatal("Chain must return a copy")
	}
}
