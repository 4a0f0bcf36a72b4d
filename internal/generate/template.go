package generate

import "math/rand"

// Footprint codes stored in the layout template.
const (
	cellConsumed = -1 // covered by a larger neighbour
	cellSingle   = 0  // 1x1 square
	cellLarge    = 2  // top-left of a 2x2 cluster
	cellPair     = 3  // top of a 1x2 vertical pair
)

// template is the footprint plan for the map, indexed [y][x].
type template [][]int

func newTemplate(width, height int) template {
	t := make(template, height)
	for y := range t {
		t[y] = make([]int, width)
	}
	return t
}

// buildTemplate places 2x2 clusters from the candidate list and then 1x2
// vertical pairs, consuming draws from rng in row-major order.
func buildTemplate(cfg *Config, rng *rand.Rand) template {
	t := newTemplate(cfg.Width, cfg.Height)

	maxLarge := max(1, cfg.area()/25)
	candidates := cfg.LargeCandidates
	if len(candidates) > maxLarge {
		candidates = candidates[:maxLarge]
	}
	for _, c := range candidates {
		y, x := c[0], c[1]
		if y < 0 || x < 0 || y >= cfg.Height-1 || x >= cfg.Width-1 {
			continue
		}
		if t[y][x] != cellSingle || t[y][x+1] != cellSingle ||
			t[y+1][x] != cellSingle || t[y+1][x+1] != cellSingle {
			continue
		}
		t[y][x] = cellLarge
		t[y][x+1] = cellConsumed
		t[y+1][x] = cellConsumed
		t[y+1][x+1] = cellConsumed
	}

	for y := 0; y < cfg.Height-1; y++ {
		for x := 0; x < cfg.Width; x++ {
			if t[y][x] == cellSingle && t[y+1][x] == cellSingle && rng.Float64() > 1-cfg.PairChance {
				t[y][x] = cellPair
				t[y+1][x] = cellConsumed
			}
		}
	}
	return t
}
