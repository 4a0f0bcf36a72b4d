package generate

import (
	"math/rand"

	"github.com/KennyNova/squarzle-next/internal/grid"
	"github.com/KennyNova/squarzle-next/internal/seed"
)

// GateTarget asks for a gate on Level as close as possible to (X, Y).
type GateTarget struct {
	Level, X, Y int
}

// TreasureWeight is one entry of the weighted treasure table.
type TreasureWeight struct {
	Type   grid.TreasureType
	Weight float64
}

// Config drives procedural generation for one map.
type Config struct {
	Seed          string
	Width, Height int
	MaxLevel      int
	LevelSpan     float64 // distance covered by one level

	// LargeCandidates are the [y, x] top-left cells tried for 2x2 clusters,
	// in order. At most max(1, area/25) are used.
	LargeCandidates [][2]int
	PairChance      float64 // chance of a 1x2 pair on a free vertical cell pair

	BossMinDivisor int // every max(BossMinDivisor, area/30)-th square is a boss

	BaseHealth, BossHealth float64
	BaseIncome, BossIncome float64
	HealthGrowth           float64 // health ~ HealthGrowth^distanceFactor
	IncomeGrowth           float64 // income ~ IncomeGrowth^distanceFactor

	TreasureChance    float64
	TreasureWeights   []TreasureWeight
	TreasureMinValue  float64
	TreasureSpread    float64 // value ~ TreasureMinValue + TreasureSpread*r
	TreasureLevelGrow float64 // value ~ TreasureLevelGrow^(level-1)

	GateTargets          []GateTarget
	GateRequirementBase  int
	GateRequirementStep  int
	GateHealthMultiplier float64
	GateTreasureBase     float64
	PortalTreasureBase   float64

	// Rand overrides the stream derived from Seed when non-nil.
	Rand *rand.Rand
}

// DefaultConfig returns the standard 15x15 six-level layout for seed.
func DefaultConfig(s string) *Config {
	return &Config{
		Seed:      s,
		Width:     15,
		Height:    15,
		MaxLevel:  6,
		LevelSpan: 3,
		LargeCandidates: [][2]int{
			{0, 0}, {0, 4}, {0, 8},
			{4, 2}, {4, 6}, {4, 10},
			{8, 0}, {8, 4}, {8, 8},
			{12, 2}, {12, 6},
		},
		PairChance:     0.2,
		BossMinDivisor: 5,
		BaseHealth:     100,
		BossHealth:     1000,
		BaseIncome:     1,
		BossIncome:     10,
		HealthGrowth:   1.3,
		IncomeGrowth:   1.5,
		TreasureChance: 0.2,
		TreasureWeights: []TreasureWeight{
			{Type: grid.TreasureDamage, Weight: 0.3},
			{Type: grid.TreasureAutoClick, Weight: 0.3},
			{Type: grid.TreasureCoins, Weight: 0.3},
			{Type: grid.TreasureLuck, Weight: 0.1},
		},
		TreasureMinValue:  50,
		TreasureSpread:    100,
		TreasureLevelGrow: 1.2,
		GateTargets: []GateTarget{
			{Level: 1, X: 4, Y: 3},
			{Level: 2, X: 7, Y: 5},
			{Level: 3, X: 10, Y: 7},
			{Level: 4, X: 12, Y: 9},
			{Level: 5, X: 13, Y: 11},
		},
		GateRequirementBase:  5,
		GateRequirementStep:  2,
		GateHealthMultiplier: 5,
		GateTreasureBase:     300,
		PortalTreasureBase:   200,
	}
}

func (c *Config) rng() *rand.Rand {
	if c.Rand != nil {
		return c.Rand
	}
	return seed.New(c.Seed)
}

func (c *Config) area() int { return c.Width * c.Height }
