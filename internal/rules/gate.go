// Package rules holds the progression rules shared by the click and tick
// paths: when a gate may be passed, which neighbours a kill reveals, and the
// row a destroyed gate tunnels through.
package rules

import "github.com/KennyNova/squarzle-next/internal/grid"

// Progress counts kills per level.
type Progress map[int]int

// Clone returns an independent copy of p.
func (p Progress) Clone() Progress {
	out := make(Progress, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// CanPass reports whether sq may be damaged: always for non-gates, and for a
// gate once its level has at least Requirement kills.
func CanPass(sq grid.Square, progress Progress) bool {
	gate, ok := sq.Gate()
	if !ok {
		return true
	}
	return progress[sq.Level] >= gate.Requirement
}

// Remaining returns how many more kills on its level sq needs before it can
// be passed. Zero for non-gates and satisfied gates.
func Remaining(sq grid.Square, progress Progress) int {
	gate, ok := sq.Gate()
	if !ok {
		return 0
	}
	return max(0, gate.Requirement-progress[sq.Level])
}
