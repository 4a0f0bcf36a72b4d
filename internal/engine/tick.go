package engine

import (
	"github.com/KennyNova/squarzle-next/internal/grid"
	"github.com/KennyNova/squarzle-next/internal/rules"
)

// Tick applies one tick of automatic damage: AutoClickDamage/TicksPerSecond
// to the first available square in enumeration order. A kill runs the same
// path as a click with the square's income divided by TicksPerSecond.
// Tick is a no-op returning st when there is no auto damage, nothing is
// available, or the target is a gate still short of its requirement.
func (e *Engine) Tick(st *State) (*State, Report) {
	if st.AutoClickDamage <= 0 {
		return st, Report{}
	}
	sq, ok := firstAvailable(st.Grid)
	if !ok || !rules.CanPass(sq, st.GateProgress) {
		return st, Report{}
	}
	tps := float64(e.cfg.TicksPerSecond)
	return e.hit(st, sq, st.AutoClickDamage/tps, 1/tps)
}

// Target returns the square the next tick would damage.
func Target(st *State) (grid.Square, bool) {
	return firstAvailable(st.Grid)
}

func firstAvailable(g *grid.Grid) (grid.Square, bool) {
	for i := 0; i < g.Len(); i++ {
		if sq := g.At(i); sq.Status == grid.StatusAvailable {
			return sq, true
		}
	}
	return grid.Square{}, false
}
