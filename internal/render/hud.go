package render

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/KennyNova/squarzle-next/internal/engine"
	"github.com/KennyNova/squarzle-next/internal/locale"
)

// DrawHUD renders the status bar, the shop row and the last messages below
// the grid, then shows the frame.
func (r *Renderer) DrawHUD(st *engine.State, eng *engine.Engine, messages []string) {
	_, screenH := r.screen.Size()
	hudY := screenH - HUDRows

	r.drawHLine(hudY, tcell.ColorGray)

	title := locale.Get("TITLE") + "  " + locale.Get("SEED", st.Seed) + "  " + locale.Get("LEVEL", st.HighestLevel())
	r.drawText(0, hudY+1, title, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))

	stats := locale.Get("STATS",
		Amount(st.Coins), Amount(st.LifetimeEarnings), Amount(st.ClickDamage),
		Amount(st.AutoClickDamage), Amount(st.CoinMultiplier), Amount(st.LuckMultiplier),
		st.SquaresKilled)
	r.drawText(0, hudY+2, stats, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	col := 0
	col = r.drawText(col, hudY+3, locale.Get("SHOP")+": ", tcell.StyleDefault.Foreground(tcell.ColorGray))
	for i, item := range eng.Shop() {
		if !eng.Visible(st, i) {
			continue
		}
		style := tcell.StyleDefault.Foreground(tcell.ColorGray)
		if st.Coins >= item.Cost {
			style = tcell.StyleDefault.Foreground(tcell.ColorGreen)
		}
		label := fmt.Sprintf("[%d] %s %s (%s)  ", i+1, item.Glyph, item.Name, Amount(item.Cost))
		col = r.drawText(col, hudY+3, label, style)
	}

	r.drawText(0, hudY+4, locale.Get("HINTS"), tcell.StyleDefault.Foreground(tcell.ColorGray))

	start := max(0, len(messages)-(HUDRows-5))
	for i, msg := range messages[start:] {
		r.drawText(0, hudY+5+i, msg, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}

	r.screen.Show()
}

// Amount formats v compactly: 950, 12.5K, 3.2M.
func Amount(v float64) string {
	switch {
	case v >= 1e9:
		return strconv.FormatFloat(v/1e9, 'f', 1, 64) + "B"
	case v >= 1e6:
		return strconv.FormatFloat(v/1e6, 'f', 1, 64) + "M"
	case v >= 1e4:
		return strconv.FormatFloat(v/1e3, 'f', 1, 64) + "K"
	case v == float64(int64(v)):
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawText writes text from column x and returns the column after it.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	col := x
	for _, cluster := range clusters(text) {
		runes := []rune(cluster)
		r.screen.SetContent(col, y, runes[0], runes[1:], style)
		col += max(1, runewidth.StringWidth(cluster))
	}
	return col
}
