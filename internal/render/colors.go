package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/KennyNova/squarzle-next/internal/grid"
)

// LevelTheme is how the squares of one level are drawn.
type LevelTheme struct {
	Open   tcell.Color // background of available squares
	Locked tcell.Color // foreground of the locked-square dots
}

// LevelThemes maps level (1-indexed) to its palette. Levels past the end
// reuse the last entry.
var LevelThemes = []LevelTheme{
	{Open: tcell.NewRGBColor(46, 125, 50), Locked: tcell.NewRGBColor(60, 90, 60)},   // 1: meadow
	{Open: tcell.NewRGBColor(2, 119, 189), Locked: tcell.NewRGBColor(50, 80, 110)},  // 2: lake
	{Open: tcell.NewRGBColor(106, 27, 154), Locked: tcell.NewRGBColor(85, 60, 100)}, // 3: dusk
	{Open: tcell.NewRGBColor(230, 81, 0), Locked: tcell.NewRGBColor(110, 70, 45)},   // 4: ember
	{Open: tcell.NewRGBColor(183, 28, 28), Locked: tcell.NewRGBColor(100, 45, 45)},  // 5: forge
	{Open: tcell.NewRGBColor(255, 179, 0), Locked: tcell.NewRGBColor(110, 95, 40)},  // 6: crown
}

// Theme returns the palette for level.
func Theme(level int) LevelTheme {
	switch {
	case level < 1:
		return LevelThemes[0]
	case level > len(LevelThemes):
		return LevelThemes[len(LevelThemes)-1]
	}
	return LevelThemes[level-1]
}

// Square markers, drawn in the top-left cell of an available square.
const (
	GlyphGate   = "⛩️"
	GlyphPortal = "🌀"
	GlyphBoss   = "👑"
	GlyphDead   = "  "
	GlyphLocked = "··"
)

// TreasureGlyphs maps a treasure type to its marker.
var TreasureGlyphs = map[grid.TreasureType]string{
	grid.TreasureDamage:    "💪",
	grid.TreasureAutoClick: "⚡",
	grid.TreasureCoins:     "💰",
	grid.TreasureLuck:      "🍀",
}

// Marker returns the glyph shown on sq, or "" for an unmarked square. Role
// wins over boss, boss over treasure.
func Marker(sq grid.Square) string {
	switch {
	case sq.IsGate():
		return GlyphGate
	case sq.IsPortal():
		return GlyphPortal
	case sq.Boss:
		return GlyphBoss
	}
	return TreasureGlyphs[sq.Treasure.Type]
}

// Shade returns the two-column fill for an available square at the given
// health fraction.
func Shade(frac float64) string {
	switch {
	case frac > 0.66:
		return "██"
	case frac > 0.33:
		return "▓▓"
	case frac > 0:
		return "▒▒"
	}
	return "░░"
}
