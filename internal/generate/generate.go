// Package generate builds the square grid for a seed. Generation runs as a
// chain of passes over one template (footprints, squares, gates, portals,
// adjacency); each pass receives the accumulators it needs explicitly so the
// later passes can rely on levels the earlier ones assigned.
package generate

import (
	"math"
	"math/rand"

	"github.com/KennyNova/squarzle-next/internal/grid"
)

// layout is the accumulator passed between generation passes.
type layout struct {
	squares []grid.Square
	byLevel map[int][]int // level -> indices into squares, enumeration order
}

// GenerateMap returns the squares of the default map for seed.
func GenerateMap(s string) []grid.Square {
	return Generate(DefaultConfig(s)).Squares()
}

// Generate builds the grid described by cfg. It is a pure function of cfg.
func Generate(cfg *Config) *grid.Grid {
	rng := cfg.rng()

	t := buildTemplate(cfg, rng)
	l := placeSquares(cfg, t, rng)
	gates := placeGates(cfg, l)
	placePortals(cfg, l, gates, rng)

	g := grid.New(cfg.Width, cfg.Height, l.squares)
	return resolveAdjacency(g)
}

// Level returns the level of the cell at (x, y): one level per LevelSpan of
// distance from the origin, capped at MaxLevel.
func (c *Config) Level(x, y int) int {
	d := math.Hypot(float64(x), float64(y))
	return min(c.MaxLevel, int(math.Floor(d/c.LevelSpan))+1)
}

// placeSquares instantiates one square per footprint in row-major order.
func placeSquares(cfg *Config, t template, rng *rand.Rand) *layout {
	l := &layout{byLevel: make(map[int][]int)}

	bossDivisor := max(cfg.BossMinDivisor, cfg.area()/30)
	maxDiagonal := math.Hypot(float64(cfg.Width), float64(cfg.Height))

	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			code := t[y][x]
			if code == cellConsumed {
				continue
			}
			size := grid.Size1x1
			switch code {
			case cellLarge:
				size = grid.Size2x2
			case cellPair:
				size = grid.Size1x2
			}

			boss := (len(l.squares)+1)%bossDivisor == 0
			level := cfg.Level(x, y)
			distanceFactor := math.Hypot(float64(x), float64(y)) / (maxDiagonal / 4)

			baseHealth, baseIncome := cfg.BaseHealth, cfg.BaseIncome
			if boss {
				baseHealth, baseIncome = cfg.BossHealth, cfg.BossIncome
			}
			health := math.Floor(baseHealth * math.Pow(cfg.HealthGrowth, distanceFactor) * size.Multiplier())
			income := math.Floor(baseIncome * math.Pow(cfg.IncomeGrowth, distanceFactor) * size.Multiplier())

			status := grid.StatusLocked
			if x == 0 && y == 0 {
				status = grid.StatusAvailable
			}

			sq := grid.Square{
				ID:             grid.ID(x, y),
				Position:       grid.Point{X: x, Y: y},
				Size:           size,
				Health:         health,
				MaxHealth:      health,
				Status:         status,
				Boss:           boss,
				Role:           grid.Plain{},
				Level:          level,
				MoneyPerSecond: income,
			}
			// The chance is drawn for every square, bosses included, so the
			// stream stays aligned with the footprint order.
			if rng.Float64() < cfg.TreasureChance && !boss {
				sq.Treasure = rollTreasure(cfg, rng, level)
			}

			l.byLevel[level] = append(l.byLevel[level], len(l.squares))
			l.squares = append(l.squares, sq)
		}
	}
	return l
}

// rollTreasure picks a weighted treasure type and a level-scaled value.
func rollTreasure(cfg *Config, rng *rand.Rand, level int) grid.Treasure {
	pick := grid.TreasureCoins
	r := rng.Float64()
	cumulative := 0.0
	for _, w := range cfg.TreasureWeights {
		cumulative += w.Weight
		if r <= cumulative {
			pick = w.Type
			break
		}
	}
	value := math.Floor((rng.Float64()*cfg.TreasureSpread + cfg.TreasureMinValue) * levelScale(cfg, level))
	return grid.Treasure{Type: pick, Value: value}
}

// levelScale is the TreasureLevelGrow^(level-1) factor shared by every
// treasure, gate and portal reward.
func levelScale(cfg *Config, level int) float64 {
	return math.Pow(cfg.TreasureLevelGrow, float64(level-1))
}
