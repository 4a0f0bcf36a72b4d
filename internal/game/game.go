// Package game runs one interactive session on a tcell screen: a ticker
// drives automatic damage, mouse clicks hit squares, keys buy upgrades.
// Every event is applied on the Run goroutine, one at a time.
package game

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/KennyNova/squarzle-next/internal/engine"
	"github.com/KennyNova/squarzle-next/internal/locale"
	"github.com/KennyNova/squarzle-next/internal/render"
)

// maxMessages bounds the message history kept for the HUD.
const maxMessages = 50

// Game is one player's session.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	engine   *engine.Engine
	state    *engine.State
	messages []string
	log      *logrus.Entry
	started  time.Time
	now      func() time.Time
}

// NewScreen creates and initialises the local terminal screen with mouse
// reporting on.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	return screen, nil
}

// New creates a session on an initialised screen and starts a game on seed
// (random when empty).
func New(screen tcell.Screen, eng *engine.Engine, seed string, log *logrus.Entry) *Game {
	g := &Game{
		screen: screen,
		engine: eng,
		log:    log,
		now:    time.Now,
	}
	g.start(seed)
	return g
}

// State returns the current snapshot.
func (g *Game) State() *engine.State { return g.state }

// Messages returns the message history, oldest first.
func (g *Game) Messages() []string { return g.messages }

func (g *Game) start(seed string) {
	g.state = g.engine.NewGame(seed)
	g.started = g.now()
	g.renderer = render.NewRenderer(g.screen, g.state.Grid.Width, g.state.Grid.Height)
	g.log = g.log.WithField("seed", g.state.Seed)
	g.log.Info("game started")
	g.addMessage(locale.Get("NEW_GAME", g.state.Seed))
}

// finish records the current game in the run log.
func (g *Game) finish(reason string) {
	run := newRunLog(g.state, g.started, g.now(), reason)
	g.log.WithFields(logrus.Fields{
		"kills":    run.SquaresKilled,
		"lifetime": run.LifetimeEarnings,
		"level":    run.HighestLevel,
		"reason":   reason,
	}).Info("game ended")
	if err := saveRunLog(run); err != nil {
		g.log.WithError(err).Warn("run log not saved")
	}
}

func (g *Game) addMessage(msgs ...string) {
	g.messages = append(g.messages, msgs...)
	if over := len(g.messages) - maxMessages; over > 0 {
		g.messages = append([]string(nil), g.messages[over:]...)
	}
}

// Run processes events and ticks until the player quits, the screen stops
// delivering events, or ctx is cancelled.
func (g *Game) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 32)
	go func() {
		defer close(events)
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(g.engine.Config().TicksPerSecond))
	defer ticker.Stop()

	g.draw()
	for {
		select {
		case <-ctx.Done():
			g.finish("disconnect")
			return ctx.Err()
		case <-ticker.C:
			if g.Tick() {
				g.draw()
			}
		case ev, ok := <-events:
			if !ok {
				g.finish("disconnect")
				return nil
			}
			if !g.HandleEvent(ev) {
				g.finish("quit")
				return nil
			}
			g.draw()
		}
	}
}

// Tick applies one auto-damage tick and reports whether anything changed.
func (g *Game) Tick() bool {
	target, _ := engine.Target(g.state)
	next, rep := g.engine.Tick(g.state)
	if next == g.state {
		return false
	}
	g.state = next
	g.addMessage(describe(next, target, rep)...)
	return true
}

// Click hits the square with the given id.
func (g *Game) Click(id string) {
	sq, _ := g.state.Grid.Lookup(id)
	next, rep, err := g.engine.Click(g.state, id)
	if err != nil {
		g.log.WithError(err).Debug("click rejected")
		g.addMessage(describeErr(err, ""))
		return
	}
	g.state = next
	if rep.Killed {
		g.log.WithFields(logrus.Fields{
			"square": id,
			"reward": rep.Reward,
			"kills":  next.SquaresKilled,
		}).Debug("square destroyed")
	}
	g.addMessage(describe(next, sq, rep)...)
}

// Buy purchases the i-th shop item.
func (g *Game) Buy(i int) {
	shop := g.engine.Shop()
	if i < 0 || i >= len(shop) {
		return
	}
	item := shop[i]
	next, err := g.engine.Purchase(g.state, item.ID)
	if err != nil {
		g.addMessage(describeErr(err, item.Name))
		return
	}
	g.state = next
	g.log.WithField("item", item.ID).Info("item bought")
	g.addMessage(locale.Get("BOUGHT", item.Name))
}

// NewGame ends the current game and starts another on seed.
func (g *Game) NewGame(seed string) {
	g.finish("new-game")
	g.start(seed)
}

// HandleEvent applies one terminal event. It returns false when the player
// asked to quit.
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
		g.renderer.Resize(g.state.Grid.Width, g.state.Grid.Height)
	case *tcell.EventMouse:
		x, y, ok := clickAt(ev)
		if !ok {
			return true
		}
		if sq, ok := g.renderer.SquareAt(g.state.Grid, x, y); ok {
			g.Click(sq.ID)
		}
	case *tcell.EventKey:
		action := keyToAction(ev)
		if i, ok := action.ShopIndex(); ok {
			g.Buy(i)
			return true
		}
		switch action {
		case ActionQuit:
			return false
		case ActionNewGame:
			g.NewGame("")
		case ActionPanN:
			g.renderer.Pan(0, -1)
		case ActionPanS:
			g.renderer.Pan(0, 1)
		case ActionPanE:
			g.renderer.Pan(1, 0)
		case ActionPanW:
			g.renderer.Pan(-1, 0)
		case ActionCenter:
			g.renderer.Resize(g.state.Grid.Width, g.state.Grid.Height)
		}
	}
	return true
}

func (g *Game) draw() {
	target := ""
	if g.state.AutoClickDamage > 0 {
		if sq, ok := engine.Target(g.state); ok {
			target = sq.ID
		}
	}
	g.renderer.DrawGrid(g.state.Grid, target)
	g.renderer.DrawHUD(g.state, g.engine, g.messages)
}
