// Package engine is the game-state reducer. Click, Tick and Purchase each
// take a *State and return a new one; the input snapshot is never modified,
// so a renderer may keep reading an old state while the next one is built.
package engine

import (
	"math/rand"
	"time"

	"github.com/KennyNova/squarzle-next/internal/generate"
	"github.com/KennyNova/squarzle-next/internal/grid"
	"github.com/KennyNova/squarzle-next/internal/rules"
	"github.com/KennyNova/squarzle-next/internal/seed"
)

// Config holds the engine's tunables.
type Config struct {
	// TicksPerSecond divides the per-second auto damage and the income of a
	// square killed by a tick.
	TicksPerSecond int
	// Starting values for a new game.
	ClickDamage     float64
	AutoClickDamage float64
	// Shop is the purchasable catalogue, in display order.
	Shop []Item
	// Map builds the generator config for a seed.
	Map func(seed string) *generate.Config
}

// DefaultConfig returns the stock rules: 10 ticks a second, 10 click damage,
// no auto damage and the standard shop.
func DefaultConfig() Config {
	return Config{
		TicksPerSecond:  10,
		ClickDamage:     10,
		AutoClickDamage: 0,
		Shop:            DefaultCatalogue(),
		Map:             generate.DefaultConfig,
	}
}

// Engine applies events to game states under one Config.
type Engine struct {
	cfg Config
}

// New returns an Engine. Zero fields in cfg fall back to DefaultConfig.
func New(cfg Config) *Engine {
	def := DefaultConfig()
	if cfg.TicksPerSecond <= 0 {
		cfg.TicksPerSecond = def.TicksPerSecond
	}
	if cfg.ClickDamage <= 0 {
		cfg.ClickDamage = def.ClickDamage
	}
	if cfg.Shop == nil {
		cfg.Shop = def.Shop
	}
	if cfg.Map == nil {
		cfg.Map = def.Map
	}
	return &Engine{cfg: cfg}
}

// Default is the engine behind the package-level helpers.
var Default = New(DefaultConfig())

// Config returns the engine's configuration.
func (e *Engine) Config() Config { return e.cfg }

// State is one immutable snapshot of a session.
type State struct {
	Grid *grid.Grid

	ClickDamage      float64
	AutoClickDamage  float64
	Coins            float64
	CoinMultiplier   float64
	LuckMultiplier   float64
	SquaresKilled    int
	LifetimeEarnings float64
	GateProgress     rules.Progress
	// HeldGates are gates revealed before their level met the requirement,
	// in the order they were found. Each opens on the first kill that
	// brings its level up to the requirement.
	HeldGates []string

	Seed string
}

func (s *State) clone() *State {
	c := *s
	c.GateProgress = s.GateProgress.Clone()
	return &c
}

// HighestLevel returns the highest level with at least one dead square, or 1
// before anything has died.
func (s *State) HighestLevel() int {
	best := 1
	s.Grid.Each(func(_ int, sq grid.Square) {
		if sq.Status == grid.StatusDead && sq.Level > best {
			best = sq.Level
		}
	})
	return best
}

// NewGame generates the map for s and returns a fresh state. An empty s is
// replaced by a random seed.
func (e *Engine) NewGame(s string) *State {
	if s == "" {
		s = seed.Random(rand.New(rand.NewSource(time.Now().UnixNano())))
	}
	return &State{
		Grid:            generate.Generate(e.cfg.Map(s)),
		ClickDamage:     e.cfg.ClickDamage,
		AutoClickDamage: e.cfg.AutoClickDamage,
		CoinMultiplier:  1,
		LuckMultiplier:  1,
		GateProgress:    rules.Progress{},
		Seed:            s,
	}
}

// NewGame starts a game with the Default engine.
func NewGame(s string) *State { return Default.NewGame(s) }

// ApplyClick applies a click on id with the Default engine. On rejection the
// input state is returned with the error.
func ApplyClick(st *State, id string) (*State, error) {
	next, _, err := Default.Click(st, id)
	return next, err
}

// ApplyTick applies one auto-damage tick with the Default engine.
func ApplyTick(st *State) *State {
	next, _ := Default.Tick(st)
	return next
}
