package main

import (
	"log"
	"sync"
	"time"

	"snake-server/game"
)

// World guards the single-threaded simulation for the server goroutines.
type World struct {
	mu        sync.Mutex
	sim       *game.World
	autopilot *game.Autopilot // nil unless enabled
}

// NewWorld creates the default 10x10 simulation
func NewWorld(autopilot bool) *World {
	sim := game.NewWorld(game.DefaultConfig())
	w := &World{sim: sim}
	if autopilot {
		w.autopilot = game.NewAutopilot(sim.Board())
	}
	return w
}

// Advance runs one frame: autopilot (if any), then player presses, then the
// simulation update. The first player press hands control back to the
// players for good, so a press made between ticks is not overwritten.
// Returns the fired ticks and the frame snapshot after them.
func (w *World) Advance(elapsed time.Duration, presses []game.Heading) ([]game.TickReport, game.Frame) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.autopilot != nil {
		w.sim.SetHeading(w.autopilot.Decide(w.sim.Frame()))
	}
	if len(presses) > 0 && w.autopilot != nil {
		log.Printf("player input received, autopilot off")
		w.autopilot = nil
	}
	for _, h := range presses {
		w.sim.SetHeading(h)
	}
	reports := w.sim.Update(elapsed)
	return reports, w.sim.Frame()
}

// Frame returns the current snapshot
func (w *World) Frame() game.Frame {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.sim.Frame()
}

// TickMS returns the tick period in milliseconds for the welcome message
func (w *World) TickMS() int64 {
	return w.sim.Period().Milliseconds()
}
