package game

import (
	"errors"
	"slices"

	"github.com/KennyNova/squarzle-next/internal/engine"
	"github.com/KennyNova/squarzle-next/internal/grid"
	"github.com/KennyNova/squarzle-next/internal/locale"
	"github.com/KennyNova/squarzle-next/internal/render"
	"github.com/KennyNova/squarzle-next/internal/rules"
)

var treasureKeys = map[grid.TreasureType]string{
	grid.TreasureDamage:    "TREASURE_DAMAGE",
	grid.TreasureAutoClick: "TREASURE_AUTOCLICK",
	grid.TreasureCoins:     "TREASURE_COINS",
	grid.TreasureLuck:      "TREASURE_LUCK",
}

// describe turns the report of a kill into log lines. Hits that do not kill
// produce nothing. st is the state after the kill.
func describe(st *engine.State, killed grid.Square, rep engine.Report) []string {
	if !rep.Killed {
		return nil
	}
	key := "KILLED"
	if killed.Boss {
		key = "KILLED_BOSS"
	}
	out := []string{locale.Get(key, killed.ID, render.Amount(rep.Reward))}

	if key, ok := treasureKeys[rep.Treasure.Type]; ok {
		out = append(out, locale.Get(key, render.Amount(rep.Treasure.Value)))
	}
	if p, ok := killed.Portal(); ok && (slices.Contains(rep.Revealed, p.Target) || slices.Contains(rep.Held, p.Target)) {
		out = append(out, locale.Get("PORTAL_OPENED"))
	}
	if n := len(rep.Tunneled); n > 0 {
		out = append(out, locale.Get("TUNNEL", n))
	}
	if n := len(rep.Revealed); n > 0 {
		out = append(out, locale.Get("REVEALED", n))
	}
	for _, id := range rep.Held {
		gate, ok := st.Grid.Lookup(id)
		if !ok {
			continue
		}
		out = append(out, locale.Get("GATE_HELD", gate.Level, rules.Remaining(gate, st.GateProgress)))
	}
	for _, id := range rep.Released {
		if gate, ok := st.Grid.Lookup(id); ok {
			out = append(out, locale.Get("GATE_RELEASED", gate.Level))
		}
	}
	return out
}

// describeErr turns a rejected click or purchase into a message. item names
// the shop item for purchase errors.
func describeErr(err error, item string) string {
	var locked *engine.GateLockedError
	switch {
	case errors.As(err, &locked):
		return locale.Get("GATE_LOCKED", locked.Level, locked.Needed, locked.Have)
	case errors.Is(err, engine.ErrNotAvailable), errors.Is(err, engine.ErrUnknownSquare):
		return locale.Get("NOT_AVAILABLE")
	case errors.Is(err, engine.ErrItemHidden), errors.Is(err, engine.ErrUnknownItem):
		return locale.Get("ITEM_HIDDEN")
	case errors.Is(err, engine.ErrInsufficientCoins):
		return locale.Get("TOO_POOR", item)
	}
	return err.Error()
}
