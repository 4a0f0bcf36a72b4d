package rules

import (
	"math/rand"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/KennyNova/squarzle-next/internal/grid"
)

const (
	// MaxAdjacentRevealed caps the neighbours one ordinary kill reveals.
	MaxAdjacentRevealed = 3
	// GateAutoClearCount caps both the neighbours a gate kill reveals and
	// the squares its tunnel destroys.
	GateAutoClearCount = 7
)

// Lookup resolves a square id against a snapshot. *grid.Grid and
// *grid.Editor both satisfy it.
type Lookup interface {
	Lookup(id string) (grid.Square, bool)
}

// RevealLimit is the reveal cap for a kill of sq.
func RevealLimit(sq grid.Square) int {
	if sq.IsGate() {
		return GateAutoClearCount
	}
	return MaxAdjacentRevealed
}

// RevealAdjacents returns the locked neighbours of killed to unlock, at most
// RevealLimit(killed) of them. When more qualify, rng shuffles them before
// truncation. A portal's locked target is always kept, in first place.
// Ids that do not resolve are skipped.
func RevealAdjacents(g Lookup, killed grid.Square, rng *rand.Rand) []string {
	var pinned string
	for _, id := range PortalRevealSquares(g, killed) {
		if sq, _ := g.Lookup(id); sq.Status == grid.StatusLocked {
			pinned = id
		}
	}

	// Generated adjacency lists are already unique; seen guards hand-built
	// grids that repeat an id.
	seen := mapset.New[string]()
	var locked []string
	for _, id := range killed.Adjacent {
		if id == pinned || seen.Has(id) {
			continue
		}
		sq, ok := g.Lookup(id)
		if !ok || sq.Status != grid.StatusLocked {
			continue
		}
		seen.Put(id)
		locked = append(locked, id)
	}

	limit := RevealLimit(killed)
	if pinned != "" {
		limit--
	}
	if len(locked) > limit {
		rng.Shuffle(len(locked), func(i, j int) {
			locked[i], locked[j] = locked[j], locked[i]
		})
		locked = locked[:limit]
	}

	if pinned == "" {
		return locked
	}
	return append([]string{pinned}, locked...)
}

// Snapshot is a read-only enumerable view of the grid.
type Snapshot interface {
	Lookup
	Each(fn func(i int, sq grid.Square))
}

// GateTunnelSquares returns the squares a destroyed gate clears outright:
// up to GateAutoClearCount non-dead squares of the gate's level on its row,
// strictly to its right, nearest first.
func GateTunnelSquares(g Snapshot, gate grid.Square) []string {
	if !gate.IsGate() {
		return nil
	}
	var row []grid.Square
	g.Each(func(_ int, sq grid.Square) {
		if sq.Position.Y == gate.Position.Y &&
			sq.Position.X > gate.Position.X &&
			sq.Status != grid.StatusDead &&
			sq.Level == gate.Level {
			row = append(row, sq)
		}
	})
	sort.SliceStable(row, func(i, j int) bool {
		return row[i].Position.X < row[j].Position.X
	})
	if len(row) > GateAutoClearCount {
		row = row[:GateAutoClearCount]
	}
	ids := make([]string, len(row))
	for i, sq := range row {
		ids[i] = sq.ID
	}
	return ids
}

// PortalRevealSquares returns the gate a destroyed portal surfaces, or nil
// when portal is not a portal or its target no longer resolves.
func PortalRevealSquares(g Lookup, portal grid.Square) []string {
	p, ok := portal.Portal()
	if !ok {
		return nil
	}
	if _, ok := g.Lookup(p.Target); !ok {
		return nil
	}
	return []string{p.Target}
}
