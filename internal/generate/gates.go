package generate

import (
	"math"
	"math/rand"
	"sort"

	"github.com/KennyNova/squarzle-next/internal/grid"
)

// placeGates converts, for every gate target, the square of that level
// closest to the target cell into a gate. It returns level -> gate index.
func placeGates(cfg *Config, l *layout) map[int]int {
	gates := make(map[int]int, len(cfg.GateTargets))

	for _, target := range cfg.GateTargets {
		candidates := append([]int(nil), l.byLevel[target.Level]...)
		if len(candidates) == 0 {
			continue
		}
		// Stable sort keeps enumeration order between equally distant squares.
		sort.SliceStable(candidates, func(i, j int) bool {
			return distSq(l.squares[candidates[i]].Position, target) <
				distSq(l.squares[candidates[j]].Position, target)
		})
		idx := candidates[0]

		sq := &l.squares[idx]
		sq.Role = grid.Gate{Requirement: gateRequirement(cfg, target.Level)}
		sq.Health *= cfg.GateHealthMultiplier
		sq.MaxHealth *= cfg.GateHealthMultiplier
		sq.Treasure = grid.Treasure{
			Type:  grid.TreasureCoins,
			Value: math.Floor(cfg.GateTreasureBase * levelScale(cfg, target.Level)),
		}
		gates[target.Level] = idx
	}
	return gates
}

// gateRequirement is the number of kills on level needed to pass its gate.
func gateRequirement(cfg *Config, level int) int {
	return cfg.GateRequirementBase + (level-1)*cfg.GateRequirementStep
}

func distSq(p grid.Point, t GateTarget) int {
	dx, dy := p.X-t.X, p.Y-t.Y
	return dx*dx + dy*dy
}

// placePortals turns one random eligible square on every level below the
// top into a portal pointing at that level's gate.
func placePortals(cfg *Config, l *layout, gates map[int]int, rng *rand.Rand) {
	for level := 1; level < cfg.MaxLevel; level++ {
		var eligible []int
		for _, idx := range l.byLevel[level] {
			sq := l.squares[idx]
			if !sq.IsGate() && !sq.Boss {
				eligible = append(eligible, idx)
			}
		}
		if len(eligible) == 0 {
			continue
		}
		gate, ok := gates[level]
		if !ok {
			continue
		}

		sq := &l.squares[eligible[rng.Intn(len(eligible))]]
		sq.Role = grid.Portal{Target: l.squares[gate].ID}
		sq.Treasure = grid.Treasure{
			Type:  grid.TreasureCoins,
			Value: math.Floor(cfg.PortalTreasureBase * levelScale(cfg, level)),
		}
	}
}
