package main

import (
	"github.com/gdamore/tcell/v2"

	"snake-server/game"
)

type action int

const (
	actionNone action = iota
	actionSteer
	actionToggleAutopilot
	actionQuit
)

// keyAction maps a key press to an action. Arrows and WASD steer; every
// press is one event, held keys only repeat at the terminal's rate.
func keyAction(key tcell.Key, r rune, mod tcell.ModMask) (action, game.Heading) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit, 0
	case tcell.KeyUp:
		return actionSteer, game.Up
	case tcell.KeyDown:
		return actionSteer, game.Down
	case tcell.KeyLeft:
		return actionSteer, game.Left
	case tcell.KeyRight:
		return actionSteer, game.Right
	case tcell.KeyRune:
	default:
		return actionNone, 0
	}

	if mod&tcell.ModCtrl != 0 {
		return actionNone, 0
	}
	switch r {
	case 'w', 'W':
		return actionSteer, game.Up
	case 's', 'S':
		return actionSteer, game.Down
	case 'a', 'A':
		return actionSteer, game.Left
	case 'd', 'D':
		return actionSteer, game.Right
	case 'p', 'P':
		return actionToggleAutopilot, 0
	case 'q', 'Q':
		return actionQuit, 0
	}
	return actionNone, 0
}
