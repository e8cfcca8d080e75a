package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"snake-server/game"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

// App runs the simulation locally against a terminal screen.
type App struct {
	screen    tcell.Screen
	world     *game.World
	view      *boardView
	bot       *game.Autopilot
	autopilot bool
}

// NewApp wires a world and a view onto an initialized screen.
func NewApp(screen tcell.Screen, autopilot bool) *App {
	world := game.NewWorld(game.DefaultConfig())
	return &App{
		screen:    screen,
		world:     world,
		view:      newBoardView(screen),
		bot:       game.NewAutopilot(world.Board()),
		autopilot: autopilot,
	}
}

// handleKey applies one key press. Returns false to quit.
func (a *App) handleKey(key tcell.Key, r rune, mod tcell.ModMask) bool {
	act, h := keyAction(key, r, mod)
	switch act {
	case actionQuit:
		return false
	case actionSteer:
		// Manual steering takes over from the autopilot
		a.autopilot = false
		a.world.SetHeading(h)
	case actionToggleAutopilot:
		a.autopilot = !a.autopilot
	}
	return true
}

// frame runs all logic for one frame, then draws.
func (a *App) frame(elapsed time.Duration) []game.TickReport {
	if a.autopilot {
		a.world.SetHeading(a.bot.Decide(a.world.Frame()))
	}
	reports := a.world.Update(elapsed)
	a.view.Render(a.world.Frame(), a.autopilot)
	return reports
}

func (a *App) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	a.view.Render(a.world.Frame(), a.autopilot)
	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !a.handleKey(ev.Key(), ev.Rune(), ev.Modifiers()) {
					return
				}
			case *tcell.EventResize:
				a.screen.Sync()
			}

		case now := <-ticker.C:
			for _, r := range a.frame(now.Sub(last)) {
				if r.Step.Ate {
					log.Printf("tick %d: ate %s at %v, respawned at %v", r.Tick, r.Step.Consumed, r.Step.Head, r.Spawned.Cell)
				}
			}
			last = now
		}
	}
}

func main() {
	autopilot := flag.Bool("autopilot", false, "Let the autopilot steer (toggle with p)")
	logFile := flag.String("log", "", "Write log output to this file")
	flag.Parse()

	// The screen owns stdout; logs go to a file or nowhere
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	app := NewApp(screen, *autopilot)
	log.Printf("game %s started, autopilot=%v", app.world.ID, *autopilot)
	app.run()
}
