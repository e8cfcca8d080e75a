package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"snake-server/game"
)

const (
	cellWidth = 2 // terminal columns per board cell, keeps cells roughly square
	helpText  = "arrows/WASD steer  p autopilot  q quit"
)

var (
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHead   = tcell.StyleDefault.Foreground(tcell.ColorLime)
	styleBody   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleFood   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// boardView draws frames inside a border at a fixed origin. Board y grows
// upward, so row 0 of the screen is the top row of the board.
type boardView struct {
	screen  tcell.Screen
	originX int
	originY int
}

func newBoardView(screen tcell.Screen) *boardView {
	return &boardView{screen: screen, originX: 0, originY: 0}
}

// cellPos returns the screen column/row of the left half of a board cell.
func (v *boardView) cellPos(b game.Grid, c game.Cell) (int, int) {
	x := v.originX + 1 + c.X*cellWidth
	y := v.originY + 1 + (b.Height - 1 - c.Y)
	return x, y
}

func (v *boardView) fill(x, y int, r rune, style tcell.Style) {
	for i := 0; i < cellWidth; i++ {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (v *boardView) text(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

// Render draws one frame. Cells that left the board are not drawn.
func (v *boardView) Render(f game.Frame, autopilot bool) {
	v.screen.Clear()
	b := f.Board
	w := b.Width*cellWidth + 2
	h := b.Height + 2

	// Border
	for x := 0; x < w; x++ {
		v.screen.SetContent(v.originX+x, v.originY, '─', nil, styleBorder)
		v.screen.SetContent(v.originX+x, v.originY+h-1, '─', nil, styleBorder)
	}
	for y := 0; y < h; y++ {
		v.screen.SetContent(v.originX, v.originY+y, '│', nil, styleBorder)
		v.screen.SetContent(v.originX+w-1, v.originY+y, '│', nil, styleBorder)
	}
	v.screen.SetContent(v.originX, v.originY, '┌', nil, styleBorder)
	v.screen.SetContent(v.originX+w-1, v.originY, '┐', nil, styleBorder)
	v.screen.SetContent(v.originX, v.originY+h-1, '└', nil, styleBorder)
	v.screen.SetContent(v.originX+w-1, v.originY+h-1, '┘', nil, styleBorder)

	// Food under the snake so a head on food shows as the head
	for _, item := range f.Food {
		if !b.InBounds(item.Cell) {
			continue
		}
		x, y := v.cellPos(b, item.Cell)
		v.fill(x, y, '●', styleFood)
	}
	for i := len(f.Chain) - 1; i >= 0; i-- {
		c := f.Chain[i]
		if !b.InBounds(c) {
			continue
		}
		x, y := v.cellPos(b, c)
		style := styleBody
		if i == 0 {
			style = styleHead
		}
		v.fill(x, y, '█', style)
	}

	status := fmt.Sprintf("tick %d  heading %s", f.Tick, f.Heading)
	if autopilot {
		status += "  [autopilot]"
	}
	if len(f.Chain) > 0 && !b.InBounds(f.Head()) {
		status += "  (off board)"
	}
	v.text(v.originX, v.originY+h, status, styleText)
	v.text(v.originX, v.originY+h+1, helpText, styleText)

	v.screen.Show()
}
