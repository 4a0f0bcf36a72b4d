// Package render draws a game state onto a tcell screen: the grid of squares
// above, a status bar, the shop and a message log below.
package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/KennyNova/squarzle-next/internal/grid"
)

// HUDRows is the number of rows reserved under the grid.
const HUDRows = 9

// Renderer draws the grid and HUD onto a screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for screen, centred on the middle of a
// width x height grid.
func NewRenderer(screen tcell.Screen, width, height int) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(width/2, height/2, w, max(1, h-HUDRows)),
	}
}

// Resize refits the viewport after a terminal resize and recentres it.
func (r *Renderer) Resize(width, height int) {
	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = max(1, h-HUDRows)
	r.camera.Center(width/2, height/2)
}

// Pan scrolls the grid view by (dx, dy) cells.
func (r *Renderer) Pan(dx, dy int) { r.camera.Pan(dx, dy) }

// WorldToScreen converts grid cell (wx, wy) to screen coordinates.
// visible is false when the cell falls outside the viewport.
func (r *Renderer) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	return r.camera.WorldToScreen(wx, wy)
}

// SquareAt returns the square drawn under screen position (sx, sy).
func (r *Renderer) SquareAt(g *grid.Grid, sx, sy int) (grid.Square, bool) {
	wx, wy, ok := r.camera.ScreenToWorld(sx, sy)
	if !ok || !g.InBounds(wx, wy) {
		return grid.Square{}, false
	}
	return g.OwnerAt(wx, wy)
}

// DrawGrid clears the screen and draws every square of g. target is the
// square the next tick will hit; it is drawn reversed.
func (r *Renderer) DrawGrid(g *grid.Grid, target string) {
	r.screen.Clear()
	g.Each(func(_ int, sq grid.Square) {
		r.drawSquare(sq, sq.ID == target)
	})
}

func (r *Renderer) drawSquare(sq grid.Square, targeted bool) {
	theme := Theme(sq.Level)
	base := tcell.StyleDefault.Background(tcell.ColorBlack)

	for dy := 0; dy < sq.Size.Height; dy++ {
		for dx := 0; dx < sq.Size.Width; dx++ {
			sx, sy, onScreen := r.camera.WorldToScreen(sq.Position.X+dx, sq.Position.Y+dy)
			if !onScreen {
				continue
			}
			first := dx == 0 && dy == 0
			switch sq.Status {
			case grid.StatusDead:
				r.putGlyph(sx, sy, GlyphDead, base)
			case grid.StatusLocked:
				glyph := GlyphLocked
				if first && sq.IsGate() {
					glyph = GlyphGate
				}
				r.putGlyph(sx, sy, glyph, base.Foreground(theme.Locked))
			default:
				style := base.Foreground(theme.Open)
				if targeted {
					style = style.Reverse(true)
				}
				glyph := Shade(sq.Health / sq.MaxHealth)
				if m := Marker(sq); first && m != "" {
					glyph = m
					style = base.Background(theme.Open)
				}
				r.putGlyph(sx, sy, glyph, style)
			}
		}
	}
}

// putGlyph draws glyph (ASCII pair or a multi-rune emoji) at (x, y) and pads
// it to two columns.
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	col := x
	for _, cluster := range clusters(glyph) {
		runes := []rune(cluster)
		r.screen.SetContent(col, y, runes[0], runes[1:], style)
		col += max(1, runewidth.StringWidth(cluster))
	}
	for ; col < x+2; col++ {
		r.screen.SetContent(col, y, ' ', nil, style)
	}
}

// clusters splits s into a base rune plus its zero-width followers (variation
// selectors and joiners).
func clusters(s string) []string {
	var out []string
	for _, ch := range s {
		if len(out) > 0 && runewidth.RuneWidth(ch) == 0 {
			out[len(out)-1] += string(ch)
			continue
		}
		out = append(out, string(ch))
	}
	return out
}
