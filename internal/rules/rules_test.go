package rules

import (
	"math/rand"
	"testing"

	"github.com/KennyNova/squarzle-next/internal/grid"
)

func square(x, y, level int, status grid.Status, role grid.Role, adj ...string) grid.Square {
	return grid.Square{
		ID:       grid.ID(x, y),
		Position: grid.Point{X: x, Y: y},
		Size:     grid.Size1x1,
		Status:   status,
		Role:     role,
		Level:    level,
		Health:   10,
		Adjacent: adj,
	}
}

func TestCanPass(t *testing.T) {
	gate := square(4, 3, 2, grid.StatusAvailable, grid.Gate{Requirement: 7})
	plain := square(1, 1, 2, grid.StatusAvailable, grid.Plain{})

	cases := []struct {
		name     string
		sq       grid.Square
		progress Progress
		want     bool
		left     int
	}{
		{"plain always passes", plain, nil, true, 0},
		{"gate with no progress", gate, Progress{}, false, 7},
		{"gate one short", gate, Progress{2: 6}, false, 1},
		{"gate exactly met", gate, Progress{2: 7}, true, 0},
		{"gate exceeded", gate, Progress{2: 9}, true, 0},
		{"progress on another level", gate, Progress{1: 20}, false, 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanPass(tc.sq, tc.progress); got != tc.want {
				t.Errorf("CanPass = %v, want %v", got, tc.want)
			}
			if got := Remaining(tc.sq, tc.progress); got != tc.left {
				t.Errorf("Remaining = %d, want %d", got, tc.left)
			}
		})
	}
}

func TestProgressClone(t *testing.T) {
	p := Progress{1: 3}
	c := p.Clone()
	c[1]++
	c[2] = 1
	if p[1] != 3 || len(p) != 1 {
		t.Errorf("Clone shares storage with the original: %v", p)
	}
}

// ringGrid builds a centre square at (1,1) listing all eight neighbours,
// locked unless listed in open.
func ringGrid(role grid.Role, open ...string) (*grid.Grid, grid.Square) {
	isOpen := make(map[string]bool)
	for _, id := range open {
		isOpen[id] = true
	}
	var squares []grid.Square
	var adj []string
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x == 1 && y == 1 {
				continue
			}
			st := grid.StatusLocked
			if isOpen[grid.ID(x, y)] {
				st = grid.StatusDead
			}
			squares = append(squares, square(x, y, 1, st, grid.Plain{}))
			adj = append(adj, grid.ID(x, y))
		}
	}
	centre := square(1, 1, 1, grid.StatusDead, role, adj...)
	squares = append(squares, centre)
	return grid.New(3, 3, squares), centre
}

func TestRevealAdjacentsCaps(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	g, centre := ringGrid(grid.Plain{})
	got := RevealAdjacents(g, centre, rng)
	if len(got) != MaxAdjacentRevealed {
		t.Errorf("plain kill revealed %d, want %d", len(got), MaxAdjacentRevealed)
	}

	g, centre = ringGrid(grid.Gate{Requirement: 1})
	got = RevealAdjacents(g, centre, rng)
	if len(got) != GateAutoClearCount {
		t.Errorf("gate kill revealed %d, want %d", len(got), GateAutoClearCount)
	}
	for _, id := range got {
		if sq, _ := g.Lookup(id); sq.Status != grid.StatusLocked {
			t.Errorf("revealed %s which is %v", id, sq.Status)
		}
	}
}

func TestRevealAdjacentsOnlyLocked(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	// Six of eight neighbours are already dead: the two locked ones come back
	// in adjacency order without a shuffle.
	g, centre := ringGrid(grid.Plain{}, "0-0", "1-0", "2-0", "0-1", "2-1", "0-2")
	got := RevealAdjacents(g, centre, rng)
	if len(got) != 2 || got[0] != "1-2" || got[1] != "2-2" {
		t.Errorf("RevealAdjacents = %v, want [1-2 2-2]", got)
	}
}

func TestRevealAdjacentsSkipsMissing(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	g, centre := ringGrid(grid.Plain{}, "0-0", "1-0", "2-0", "0-1", "2-1", "0-2", "1-2")
	centre.Adjacent = append([]string{"ghost"}, centre.Adjacent...)
	got := RevealAdjacents(g, centre, rng)
	if len(got) != 1 || got[0] != "2-2" {
		t.Errorf("RevealAdjacents = %v, want [2-2]", got)
	}
}

func TestRevealAdjacentsDedupesHandBuiltLists(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	g, centre := ringGrid(grid.Plain{}, "0-0", "1-0", "2-0", "0-1", "2-1", "0-2")
	centre.Adjacent = append(centre.Adjacent, "2-2", "1-2", "2-2")
	got := RevealAdjacents(g, centre, rng)
	if len(got) != 2 || got[0] != "1-2" || got[1] != "2-2" {
		t.Errorf("RevealAdjacents = %v, want [1-2 2-2]", got)
	}
}

func TestRevealAdjacentsDeterministicPerStream(t *testing.T) {
	g, centre := ringGrid(grid.Plain{})
	a := RevealAdjacents(g, centre, rand.New(rand.NewSource(42)))
	b := RevealAdjacents(g, centre, rand.New(rand.NewSource(42)))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same stream gave %v and %v", a, b)
		}
	}
}

func TestRevealAdjacentsPinsPortalTarget(t *testing.T) {
	for s := int64(0); s < 20; s++ {
		g, centre := ringGrid(grid.Portal{Target: "2-2"})
		got := RevealAdjacents(g, centre, rand.New(rand.NewSource(s)))
		if len(got) != MaxAdjacentRevealed {
			t.Fatalf("seed=%d: revealed %d, want %d", s, len(got), MaxAdjacentRevealed)
		}
		if got[0] != "2-2" {
			t.Errorf("seed=%d: portal target not first: %v", s, got)
		}
		for _, id := range got[1:] {
			if id == "2-2" {
				t.Errorf("seed=%d: portal target listed twice: %v", s, got)
			}
		}
	}
}

func TestGateTunnelSquares(t *testing.T) {
	// One row: gate at x=2, level 3 squares to its right except a level-4
	// square at x=5 and a dead square at x=6; squares left of the gate and on
	// other rows never count.
	var squares []grid.Square
	squares = append(squares, square(0, 0, 3, grid.StatusLocked, grid.Plain{}))
	squares = append(squares, square(1, 0, 3, grid.StatusLocked, grid.Plain{}))
	gate := square(2, 0, 3, grid.StatusDead, grid.Gate{Requirement: 1})
	squares = append(squares, gate)
	for x := 3; x < 14; x++ {
		level, st := 3, grid.StatusLocked
		switch x {
		case 4:
			st = grid.StatusAvailable
		case 5:
			level = 4
		case 6:
			st = grid.StatusDead
		}
		squares = append(squares, square(x, 0, level, st, grid.Plain{}))
	}
	squares = append(squares, square(3, 1, 3, grid.StatusLocked, grid.Plain{}))
	g := grid.New(14, 2, squares)

	got := GateTunnelSquares(g, gate)
	want := []string{"3-0", "4-0", "7-0", "8-0", "9-0", "10-0", "11-0"}
	if len(got) != len(want) {
		t.Fatalf("GateTunnelSquares = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("GateTunnelSquares = %v, want %v", got, want)
		}
	}

	if ids := GateTunnelSquares(g, squares[0]); ids != nil {
		t.Errorf("non-gate tunnel = %v, want nil", ids)
	}
}

func TestPortalRevealSquares(t *testing.T) {
	gate := square(1, 0, 1, grid.StatusLocked, grid.Gate{Requirement: 5})
	portal := square(0, 0, 1, grid.StatusDead, grid.Portal{Target: gate.ID})
	broken := square(0, 1, 1, grid.StatusDead, grid.Portal{Target: "9-9"})
	g := grid.New(2, 2, []grid.Square{portal, gate, broken})

	if got := PortalRevealSquares(g, portal); len(got) != 1 || got[0] != gate.ID {
		t.Errorf("PortalRevealSquares = %v, want [%s]", got, gate.ID)
	}
	if got := PortalRevealSquares(g, broken); got != nil {
		t.Errorf("missing target should yield nil, got %v", got)
	}
	if got := PortalRevealSquares(g, gate); got != nil {
		t.Errorf("non-portal should yield nil, got %v", got)
	}
}
