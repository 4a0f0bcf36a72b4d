// mapdump prints the layout generated for a seed.
//
//	go run ./cmd/mapdump -seed abc [-no-color] [-stats]
//
// Each cell is two characters: a marker and the level digit. G gate, P
// portal, B boss, D/A/C/L treasure (damage, autoclick, coins, luck), · plain.
// Cells covered by a larger square's footprint print as "++". The origin is
// underlined.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/gookit/color"

	"github.com/KennyNova/squarzle-next/internal/generate"
	"github.com/KennyNova/squarzle-next/internal/grid"
)

func main() {
	seed := flag.String("seed", "", "Map seed")
	noColor := flag.Bool("no-color", false, "Disable ANSI colors")
	showStats := flag.Bool("stats", false, "Print per-level statistics after the map")
	flag.Parse()

	if *seed == "" {
		fmt.Fprintln(os.Stderr, "usage: mapdump -seed <seed> [-no-color] [-stats]")
		os.Exit(2)
	}

	g := generate.Generate(generate.DefaultConfig(*seed))
	dump(os.Stdout, g, !*noColor)
	if *showStats {
		fmt.Println()
		writeStats(os.Stdout, g)
	}
}

var levelStyles = []color.Style{
	{color.FgGreen},
	{color.FgBlue},
	{color.FgMagenta},
	{color.FgYellow},
	{color.FgRed},
	{color.FgCyan},
}

func styleFor(sq grid.Square) color.Style {
	st := append(color.Style{}, levelStyles[min(len(levelStyles), max(1, sq.Level))-1]...)
	if sq.IsGate() || sq.IsPortal() || sq.Boss {
		st = append(st, color.OpBold)
	}
	if sq.Status == grid.StatusAvailable {
		st = append(st, color.OpUnderscore)
	}
	return st
}

var treasureMarks = map[grid.TreasureType]string{
	grid.TreasureDamage:    "D",
	grid.TreasureAutoClick: "A",
	grid.TreasureCoins:     "C",
	grid.TreasureLuck:      "L",
}

// code is the two-character cell label of sq.
func code(sq grid.Square) string {
	mark := "·"
	switch {
	case sq.IsGate():
		mark = "G"
	case sq.IsPortal():
		mark = "P"
	case sq.Boss:
		mark = "B"
	case sq.Treasure.Present():
		mark = treasureMarks[sq.Treasure.Type]
	}
	return mark + strconv.Itoa(sq.Level)
}

// dump writes one text row per grid row.
func dump(w io.Writer, g *grid.Grid, colored bool) {
	for y := 0; y < g.Height; y++ {
		var b strings.Builder
		for x := 0; x < g.Width; x++ {
			sq, ok := g.OwnerAt(x, y)
			cell := "  "
			if ok {
				cell = "++"
				if sq.Position.X == x && sq.Position.Y == y {
					cell = code(sq)
				}
				if colored {
					cell = styleFor(sq).Sprint(cell)
				}
			}
			b.WriteString(cell)
		}
		fmt.Fprintln(w, b.String())
	}
}

type levelStats struct {
	squares   int
	bosses    int
	treasures map[grid.TreasureType]int
	health    float64
	income    float64
	gate      string
	portal    string
}

// writeStats prints a per-level summary.
func writeStats(w io.Writer, g *grid.Grid) {
	levels := make(map[int]*levelStats)
	g.Each(func(_ int, sq grid.Square) {
		ls, ok := levels[sq.Level]
		if !ok {
			ls = &levelStats{treasures: make(map[grid.TreasureType]int)}
			levels[sq.Level] = ls
		}
		ls.squares++
		ls.health += sq.MaxHealth
		ls.income += sq.MoneyPerSecond
		if sq.Boss {
			ls.bosses++
		}
		if sq.Treasure.Present() {
			ls.treasures[sq.Treasure.Type]++
		}
		if gate, ok := sq.Gate(); ok {
			ls.gate = fmt.Sprintf("%s (needs %d)", sq.ID, gate.Requirement)
		}
		if p, ok := sq.Portal(); ok {
			ls.portal = sq.ID + " -> " + p.Target
		}
	})

	keys := make([]int, 0, len(levels))
	for k := range levels {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, k := range keys {
		ls := levels[k]
		fmt.Fprintf(w, "level %d: %d squares, %d bosses, health %.0f, income %.0f/s\n",
			k, ls.squares, ls.bosses, ls.health, ls.income)
		fmt.Fprintf(w, "  treasure: damage %d, autoclick %d, coins %d, luck %d\n",
			ls.treasures[grid.TreasureDamage], ls.treasures[grid.TreasureAutoClick],
			ls.treasures[grid.TreasureCoins], ls.treasures[grid.TreasureLuck])
		if ls.gate != "" {
			fmt.Fprintf(w, "  gate: %s\n", ls.gate)
		}
		if ls.portal != "" {
			fmt.Fprintf(w, "  portal: %s\n", ls.portal)
		}
	}
}
