package generate

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/KennyNova/squarzle-next/internal/grid"
)

// resolveAdjacency fills in Adjacent for every square and returns the
// resulting grid.
func resolveAdjacency(g *grid.Grid) *grid.Grid {
	ed := g.Edit()
	g.Each(func(_ int, sq grid.Square) {
		sq.Adjacent = Neighbours(g, sq)
		ed.Set(sq)
	})
	return ed.Grid()
}

// Neighbours scans the ring of cells around the footprint of sq and returns,
// in scan order and without duplicates, the squares sq may reveal on death:
// squares of its own level; for a gate, squares exactly one level higher; for
// a portal, its target gate.
func Neighbours(g *grid.Grid, sq grid.Square) []string {
	seen := mapset.New[string]()
	var out []string

	x0, y0 := sq.Position.X, sq.Position.Y
	for y := y0 - 1; y <= y0+sq.Size.Height; y++ {
		for x := x0 - 1; x <= x0+sq.Size.Width; x++ {
			if sq.Covers(x, y) {
				continue
			}
			other, ok := g.OwnerAt(x, y)
			if !ok || other.ID == sq.ID || seen.Has(other.ID) {
				continue
			}
			if !canReveal(sq, other) {
				continue
			}
			seen.Put(other.ID)
			out = append(out, other.ID)
		}
	}
	return out
}

// canReveal enforces level-by-level progression: ordinary squares only reach
// their own level, gates also open the next level, portals reach their gate.
func canReveal(from, to grid.Square) bool {
	if from.Level == to.Level {
		return true
	}
	if from.IsGate() && to.Level == from.Level+1 {
		return true
	}
	if p, ok := from.Portal(); ok && p.Target == to.ID {
		return true
	}
	return false
}
