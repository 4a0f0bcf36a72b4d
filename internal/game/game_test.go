package game

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/KennyNova/squarzle-next/internal/engine"
	"github.com/KennyNova/squarzle-next/internal/grid"
	"github.com/KennyNova/squarzle-next/internal/logger"
	"github.com/KennyNova/squarzle-next/internal/rules"
)

func newTestGame(t *testing.T, seed string) (*Game, tcell.SimulationScreen) {
	t.Helper()
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	s.SetSize(100, 40)
	t.Cleanup(s.Fini)
	return New(s, engine.Default, seed, logrus.NewEntry(logger.Log)), s
}

func lastMessage(g *Game) string {
	msgs := g.Messages()
	if len(msgs) == 0 {
		return ""
	}
	return msgs[len(msgs)-1]
}

func TestMouseClickHitsSquare(t *testing.T) {
	g, _ := newTestGame(t, "abc")
	origin, _ := g.State().Grid.Lookup("0-0")

	sx, sy, ok := g.renderer.WorldToScreen(1, 1)
	if !ok {
		t.Fatal("origin footprint should be on screen")
	}
	if !g.HandleEvent(tcell.NewEventMouse(sx, sy, tcell.Button1, tcell.ModNone)) {
		t.Fatal("a click must not quit")
	}
	after, _ := g.State().Grid.Lookup("0-0")
	if after.Health != origin.Health-10 {
		t.Errorf("origin health %v -> %v, want -10", origin.Health, after.Health)
	}
}

func TestClickLockedSquareShowsMessage(t *testing.T) {
	g, _ := newTestGame(t, "abc")
	before := g.State()
	g.Click("14-14")
	if g.State() != before {
		t.Error("a rejected click must keep the state")
	}
	if !strings.Contains(lastMessage(g), "not open") {
		t.Errorf("message = %q", lastMessage(g))
	}
}

func TestBuyWithoutCoins(t *testing.T) {
	g, _ := newTestGame(t, "abc")
	g.HandleEvent(tcell.NewEventKey(tcell.KeyRune, '1', tcell.ModNone))
	if !strings.Contains(lastMessage(g), "Not enough coins") {
		t.Errorf("message = %q", lastMessage(g))
	}
	g.HandleEvent(tcell.NewEventKey(tcell.KeyRune, '2', tcell.ModNone))
	if !strings.Contains(lastMessage(g), "unlock") {
		t.Errorf("message = %q", lastMessage(g))
	}
}

func TestBuyWithCoins(t *testing.T) {
	g, _ := newTestGame(t, "abc")
	g.state.Coins = 150
	g.Buy(0)
	if g.State().ClickDamage != 20 || g.State().Coins != 50 {
		t.Errorf("after buying: click %v coins %v", g.State().ClickDamage, g.State().Coins)
	}
	if !strings.HasPrefix(lastMessage(g), "Bought") {
		t.Errorf("message = %q", lastMessage(g))
	}
}

func TestTickOnlyWithAutoDamage(t *testing.T) {
	g, _ := newTestGame(t, "abc")
	if g.Tick() {
		t.Error("no auto damage: tick should change nothing")
	}
	g.state.AutoClickDamage = 100
	if !g.Tick() {
		t.Error("tick with auto damage should hit the origin")
	}
}

func TestNewGameWritesRunLog(t *testing.T) {
	g, _ := newTestGame(t, "abc")
	g.NewGame("other")
	if g.State().Seed != "other" {
		t.Errorf("seed = %q", g.State().Seed)
	}
	data, err := os.ReadFile(filepath.Join(os.Getenv("XDG_DATA_HOME"), "squarzle", "runs.jsonl"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"seed":"abc"`) || !strings.Contains(string(data), `"reason":"new-game"`) {
		t.Errorf("run log = %q", data)
	}
}

func TestQuitKey(t *testing.T) {
	g, _ := newTestGame(t, "abc")
	if g.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("q should quit")
	}
}

func TestRunStopsOnQuit(t *testing.T) {
	g, s := newTestGame(t, "abc")
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	done := make(chan error, 1)
	go func() { done <- g.Run(context.Background()) }()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after q")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	g, _ := newTestGame(t, "abc")
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- g.Run(ctx) }()
	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestDescribe(t *testing.T) {
	killed := grid.Square{ID: "3-4", Role: grid.Portal{Target: "5-5"}, Boss: false}
	rep := engine.Report{
		Killed:   true,
		Reward:   12,
		Treasure: grid.Treasure{Type: grid.TreasureCoins, Value: 10},
		Revealed: []string{"5-5", "3-5"},
	}
	st := &engine.State{
		Grid: grid.New(6, 6, []grid.Square{
			{ID: "5-5", Position: grid.Point{X: 5, Y: 5}, Size: grid.Size1x1, Level: 2,
				Role: grid.Gate{Requirement: 7}},
		}),
		GateProgress: rules.Progress{2: 3},
	}
	got := describe(st, killed, rep)
	want := []string{
		"Destroyed 3-4 for 12 coins.",
		"Treasure: 10 coins.",
		"The portal reveals the way to the gate.",
		"2 new squares opened.",
	}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("describe = %q, want %q", got, want)
	}

	held := engine.Report{Killed: true, Held: []string{"5-5"}}
	got = describe(st, grid.Square{ID: "4-5"}, held)
	if last := got[len(got)-1]; last != "A level 2 gate was found but stays sealed: 4 more kills needed." {
		t.Errorf("held message = %q", last)
	}
	released := engine.Report{Killed: true, Released: []string{"5-5"}}
	got = describe(st, grid.Square{ID: "4-5"}, released)
	if last := got[len(got)-1]; last != "The level 2 gate unseals." {
		t.Errorf("released message = %q", last)
	}
	if describe(st, killed, engine.Report{}) != nil {
		t.Error("a surviving square produces no messages")
	}
}

func TestDescribeErr(t *testing.T) {
	err := &engine.GateLockedError{ID: "4-3", Level: 2, Needed: 7, Have: 6}
	if got := describeErr(err, ""); got != "Gate still locked: level 2 needs 7 kills (6 so far)." {
		t.Errorf("describeErr = %q", got)
	}
	if got := describeErr(errors.New("boom"), ""); got != "boom" {
		t.Errorf("unknown error passes through, got %q", got)
	}
}
