package main

import (
	"context"
	"log"
	"time"

	"snake-server/game"
)

// GameLoop polls the simulation clock at a fixed frame rate and broadcasts
// one state message per frame in which a tick fired, after all of that
// frame's ticks have run.
type GameLoop struct {
	world *World
	conns *ConnManager
}

// NewGameLoop creates a game loop bound to world and conn manager.
func NewGameLoop(world *World, conns *ConnManager) *GameLoop {
	return &GameLoop{
		world: world,
		conns: conns,
	}
}

// Run starts the frame loop. Blocks until ctx is done.
func (gl *GameLoop) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second / FrameRate)
	defer ticker.Stop()
	log.Printf("game loop started at %d frames/sec, tick every %dms", FrameRate, gl.world.TickMS())

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			log.Printf("game loop stopped")
			return
		case now := <-ticker.C:
			gl.frame(now.Sub(last))
			last = now
		}
	}
}

// frame executes one frame update
func (gl *GameLoop) frame(elapsed time.Duration) []game.TickReport {
	// 1. Collect key presses since the last frame
	conns := gl.conns.Snapshot()
	var presses []game.Heading
	for _, c := range conns {
		if h, ok := c.TakeInput(); ok {
			presses = append(presses, h)
		}
	}

	// 2. Run every tick that became due
	reports, frame := gl.world.Advance(elapsed, presses)
	if len(reports) == 0 {
		return nil
	}

	// 3. Log consumption
	for _, r := range reports {
		if r.Step.Ate {
			log.Printf("tick %d: ate food %s at %v, length %d, respawned %s at %v",
				r.Tick, r.Step.Consumed, r.Step.Head, r.Step.Length, r.Spawned.ID, r.Spawned.Cell)
		}
	}

	// 4. Broadcast the post-frame state
	gl.broadcast(conns, frame)
	return reports
}

// broadcast sends the frame to each viewer still registered; connections
// removed since the snapshot was taken are skipped.
func (gl *GameLoop) broadcast(conns []*Conn, frame game.Frame) {
	msg := newStateMsg(frame)
	for _, c := range conns {
		if _, ok := gl.conns.Get(c.ID); !ok {
			continue
		}
		if err := c.Send(msg); err != nil {
			log.Printf("send error to %s: %v", c.ID, err)
		}
	}
}
