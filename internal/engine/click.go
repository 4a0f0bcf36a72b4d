package engine

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/KennyNova/squarzle-next/internal/grid"
	"github.com/KennyNova/squarzle-next/internal/rules"
	"github.com/KennyNova/squarzle-next/internal/seed"
)

// Report describes what one accepted click or tick did.
type Report struct {
	Square string
	// Damage is the health actually removed.
	Damage float64
	Killed bool
	// Treasure is the treasure granted, its value already scaled by luck.
	Treasure grid.Treasure
	// Reward is the total credited to Coins and LifetimeEarnings.
	Reward float64
	// Revealed squares went from locked to available.
	Revealed []string
	// Held are revealed gates that stay locked until their level has enough
	// kills.
	Held []string
	// Released are previously held gates this kill opened.
	Released []string
	// Tunneled squares were destroyed by a gate's tunnel.
	Tunneled []string
}

// Click applies the current click damage to the square with the given id.
// A rejected click returns st itself and an error matching ErrUnknownSquare,
// ErrNotAvailable or ErrGateLocked.
func (e *Engine) Click(st *State, id string) (*State, Report, error) {
	sq, ok := st.Grid.Lookup(id)
	if !ok {
		return st, Report{}, fmt.Errorf("click %s: %w", id, ErrUnknownSquare)
	}
	if sq.Status != grid.StatusAvailable {
		return st, Report{}, fmt.Errorf("click %s (%s): %w", id, sq.Status, ErrNotAvailable)
	}
	if !rules.CanPass(sq, st.GateProgress) {
		gate, _ := sq.Gate()
		return st, Report{}, &GateLockedError{
			ID:     id,
			Level:  sq.Level,
			Needed: gate.Requirement,
			Have:   st.GateProgress[sq.Level],
		}
	}
	next, rep := e.hit(st, sq, st.ClickDamage, 1)
	return next, rep, nil
}

// hit removes amount health from sq and, if that kills it, runs the kill
// path. incomeScale scales the square's MoneyPerSecond contribution.
func (e *Engine) hit(st *State, sq grid.Square, amount, incomeScale float64) (*State, Report) {
	next := st.clone()
	ed := st.Grid.Edit()
	rep := Report{Square: sq.ID, Damage: math.Min(amount, sq.Health)}

	sq.Health = math.Max(0, sq.Health-amount)
	if sq.Health > 0 {
		ed.Set(sq)
		next.Grid = ed.Grid()
		return next, rep
	}
	sq.Status = grid.StatusDead
	ed.Set(sq)
	rep.Killed = true

	var bonus float64
	rep.Treasure, bonus = grantTreasure(next, sq.Treasure)

	next.SquaresKilled++
	next.GateProgress[sq.Level]++

	rng := seed.Derive(next.Seed, strconv.Itoa(next.SquaresKilled), sq.ID)
	reveal := rules.RevealAdjacents(ed, sq, rng)
	if sq.IsGate() {
		rep.Tunneled = tunnel(next, ed, sq)
	}
	for _, id := range reveal {
		n, ok := ed.Lookup(id)
		if !ok || n.Status != grid.StatusLocked {
			continue
		}
		if !rules.CanPass(n, next.GateProgress) {
			rep.Held = append(rep.Held, id)
			continue
		}
		n.Status = grid.StatusAvailable
		ed.Set(n)
		rep.Revealed = append(rep.Revealed, id)
	}
	releaseHeld(next, ed, &rep)

	rep.Reward = sq.MoneyPerSecond*next.CoinMultiplier*next.LuckMultiplier*incomeScale + bonus
	next.Coins += rep.Reward
	next.LifetimeEarnings += rep.Reward
	next.Grid = ed.Grid()
	return next, rep
}

// releaseHeld opens every held gate whose level now meets its requirement
// and adds the gates held by this kill to st.HeldGates.
func releaseHeld(st *State, ed *grid.Editor, rep *Report) {
	var still []string
	for _, id := range append(slices.Clone(st.HeldGates), rep.Held...) {
		gate, ok := ed.Lookup(id)
		if !ok || gate.Status != grid.StatusLocked || slices.Contains(still, id) {
			continue
		}
		if !rules.CanPass(gate, st.GateProgress) {
			still = append(still, id)
			continue
		}
		gate.Status = grid.StatusAvailable
		ed.Set(gate)
		rep.Released = append(rep.Released, id)
	}
	st.HeldGates = still
}

// grantTreasure applies t to st and returns the granted treasure together
// with its coin bonus.
func grantTreasure(st *State, t grid.Treasure) (grid.Treasure, float64) {
	if !t.Present() {
		return grid.Treasure{}, 0
	}
	v := t.Value * st.LuckMultiplier
	var coins float64
	switch t.Type {
	case grid.TreasureDamage:
		st.ClickDamage += v
	case grid.TreasureAutoClick:
		st.AutoClickDamage += v
	case grid.TreasureCoins:
		coins = v
	case grid.TreasureLuck:
		st.LuckMultiplier += v / 100
	}
	return grid.Treasure{Type: t.Type, Value: v}, coins
}

// tunnel destroys the squares a dead gate clears along its row. They count
// as kills for their level but grant neither treasure nor income, and they
// reveal nothing themselves.
func tunnel(st *State, ed *grid.Editor, gate grid.Square) []string {
	ids := rules.GateTunnelSquares(ed, gate)
	for _, id := range ids {
		sq, _ := ed.Lookup(id)
		sq.Health = 0
		sq.Status = grid.StatusDead
		ed.Set(sq)
		st.SquaresKilled++
		st.GateProgress[sq.Level]++
	}
	return ids
}
