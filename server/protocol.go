package main

import "snake-server/game"

// Protocol uses single-character JSON keys to keep frames small.
// Coordinates are board cells; rects are pixels (cell * CellPixels).
//
// Message type constants (value of "t" field):
//   Client → Server:
//     "i" = input   {"t":"i","d":"u"}   (d = u/d/l/r)
//   Server → Client:
//     "w" = welcome {"t":"w","i":"connID","g":"gameID","w":10,"h":10,"c":10,"p":500}
//     "s" = state   {"t":"s","n":tick,"d":"r","s":[[x,y],...],"f":[food],"r":[rects]}
//
// FoodDTO: {"i":"id","x":7,"y":6}
// RectDTO: {"x":70,"y":60,"w":10,"h":10,"k":"s"}   k = s (snake) / f (food)

// Message type identifiers
const (
	MsgInput   = "i"
	MsgWelcome = "w"
	MsgState   = "s"
)

// ClientMessage is the incoming message from the browser.
type ClientMessage struct {
	Type string `json:"t"`
	Dir  string `json:"d,omitempty"`
}

// WelcomeMsg is sent once on connect so the client can size its canvas.
type WelcomeMsg struct {
	Type       string `json:"t"`
	ID         string `json:"i"`
	GameID     string `json:"g"`
	Width      int    `json:"w"`
	Height     int    `json:"h"`
	CellPixels int    `json:"c"`
	TickMS     int64  `json:"p"`
}

// FoodDTO is one active food item
type FoodDTO struct {
	ID string `json:"i"`
	X  int    `json:"x"`
	Y  int    `json:"y"`
}

// RectDTO is one pixel rectangle to fill
type RectDTO struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	W    int    `json:"w"`
	H    int    `json:"h"`
	Kind string `json:"k"`
}

// StateMsg is the state broadcast, sent once per frame in which a tick fired.
// Snake cells are flat [x,y] pairs, head first.
type StateMsg struct {
	Type    string    `json:"t"`
	Tick    uint64    `json:"n"`
	Heading string    `json:"d"`
	Snake   [][2]int  `json:"s"`
	Food    []FoodDTO `json:"f"`
	Rects   []RectDTO `json:"r"`
}

// newWelcomeMsg builds the welcome for connection id.
func newWelcomeMsg(id string, f game.Frame, tickMS int64) WelcomeMsg {
	return WelcomeMsg{
		Type:       MsgWelcome,
		ID:         id,
		GameID:     f.GameID,
		Width:      f.Board.Width,
		Height:     f.Board.Height,
		CellPixels: game.CellPixels,
		TickMS:     tickMS,
	}
}

// newStateMsg converts a frame snapshot to its wire form.
func newStateMsg(f game.Frame) StateMsg {
	snake := make([][2]int, len(f.Chain))
	for i, c := range f.Chain {
		snake[i] = [2]int{c.X, c.Y}
	}
	food := make([]FoodDTO, len(f.Food))
	for i, item := range f.Food {
		food[i] = FoodDTO{ID: string(item.ID), X: item.Cell.X, Y: item.Cell.Y}
	}
	rects := f.Rects()
	rectDTOs := make([]RectDTO, len(rects))
	for i, r := range rects {
		rectDTOs[i] = RectDTO{X: r.X, Y: r.Y, W: r.W, H: r.H, Kind: string(r.Kind)}
	}
	return StateMsg{
		Type:    MsgState,
		Tick:    f.Tick,
		Heading: f.Heading.String(),
		Snake:   snake,
		Food:    food,
		Rects:   rectDTOs,
	}
}
