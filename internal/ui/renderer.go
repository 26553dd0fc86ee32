package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/stonefall/internal/world"
)

// Colorer maps a tile to its fill color; false means the tile is not drawn.
type Colorer interface {
	ColorOf(t world.Tile) (tcell.Color, bool)
}

// Status is the information shown under the grid.
type Status struct {
	Level  string
	Tick   uint64
	Paused bool
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen    *Screen
	colors    Colorer
	cellWidth int
}

// NewRenderer creates a renderer drawing each grid cell cellWidth columns wide.
func NewRenderer(screen *Screen, colors Colorer, cellWidth int) *Renderer {
	if cellWidth < 1 {
		cellWidth = 1
	}
	return &Renderer{screen: screen, colors: colors, cellWidth: cellWidth}
}

// Render draws the grid and status line to the screen.
func (r *Renderer) Render(g *world.Grid, status Status) {
	r.screen.Clear()

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			color, ok := r.colors.ColorOf(g.At(x, y))
			if !ok {
				continue
			}
			r.screen.Fill(x*r.cellWidth, y, r.cellWidth, color)
		}
	}

	r.RenderMessage(statusLine(status), g.Height+1)
	r.screen.Show()
}

// RenderMessage displays a message at the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		r.screen.SetContent(i, y, ch, style)
	}
}

func statusLine(s Status) string {
	line := fmt.Sprintf("%s  tick %d  [arrows/wasd] move  [r] restart  [p] pause  [q] quit", s.Level, s.Tick)
	if s.Paused {
		line = "PAUSED  " + line
	}
	return line
}
