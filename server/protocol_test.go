package main

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"snake-server/game"
)

func TestDecodeInput(t *testing.T) {
	h, err := decodeInput([]byte(`{"t":"i","d":"l"}`))
	if err != nil || h != game.Left {
		t.Fatalf("decode=%v,%v", h, err)
	}
	if _, err := decodeInput([]byte(`{"t":"i","d":"x"}`)); !errors.Is(err, game.ErrUnknownHeading) {
		t.Fatalf("want ErrUnknownHeading, got %v", err)
	}
	if _, err := decodeInput([]byte(`{"t":"j"}`)); err == nil {
		t.Fatal("non-input message should be rejected")
	}
	if _, err := decodeInput([]byte(`not json`)); err == nil {
		t.Fatal("garbage should be rejected")
	}
}

func TestStateMsgWireForm(t *testing.T) {
	frame := game.Frame{
		Tick:    3,
		Heading: game.Up,
		Board:   game.NewGrid(10, 10),
		Chain:   []game.Cell{{X: 7, Y: 6}, {X: 7, Y: 5}},
		Food:    []game.FoodItem{{ID: "f1", Cell: game.Cell{X: 2, Y: 2}}},
	}
	data, err := json.Marshal(newStateMsg(frame))
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)
	for _, want := range []string{
		`"t":"s"`,
		`"n":3`,
		`"d":"u"`,
		`"s":[[7,6],[7,5]]`,
		`"f":[{"i":"f1","x":2,"y":2}]`,
		`{"x":70,"y":60,"w":10,"h":10,"k":"s"}`,
		`{"x":20,"y":20,"w":10,"h":10,"k":"f"}`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("state %s missing %s", got, want)
		}
	}
}

func TestWelcomeMsg(t *testing.T) {
	frame := game.Frame{GameID: "g", Board: game.NewGrid(10, 10)}
	msg := newWelcomeMsg("c", frame, 500)
	if msg.Type != MsgWelcome || msg.Width != 10 || msg.Height != 10 || msg.CellPixels != 10 || msg.TickMS != 500 {
		t.Fatalf("welcome=%+v", msg)
	}
}
