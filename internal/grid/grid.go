// Package grid holds the square data model and the immutable grid snapshot
// the engine transitions between.
package grid

// Grid is an immutable snapshot of every square on a map, in generation
// (row-major) order. Lookups by id and by cell are O(1).
type Grid struct {
	Width, Height int

	squares []Square
	index   map[string]int // id -> position in squares
	owner   map[Point]int  // occupied cell -> position in squares
}

// New builds a Grid over squares. The slice is copied.
func New(width, height int, squares []Square) *Grid {
	g := &Grid{
		Width:   width,
		Height:  height,
		squares: append([]Square(nil), squares...),
		index:   make(map[string]int, len(squares)),
		owner:   make(map[Point]int, width*height),
	}
	for i, sq := range g.squares {
		g.index[sq.ID] = i
		for dy := 0; dy < sq.Size.Height; dy++ {
			for dx := 0; dx < sq.Size.Width; dx++ {
				g.owner[Point{X: sq.Position.X + dx, Y: sq.Position.Y + dy}] = i
			}
		}
	}
	return g
}

// Len returns the number of squares.
func (g *Grid) Len() int { return len(g.squares) }

// At returns the i-th square in enumeration order.
func (g *Grid) At(i int) Square { return g.squares[i] }

// InBounds reports whether (x, y) is within the grid boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Lookup returns the square with the given id.
func (g *Grid) Lookup(id string) (Square, bool) {
	i, ok := g.index[id]
	if !ok {
		return Square{}, false
	}
	return g.squares[i], true
}

// OwnerAt returns the square whose footprint covers (x, y).
func (g *Grid) OwnerAt(x, y int) (Square, bool) {
	i, ok := g.owner[Point{X: x, Y: y}]
	if !ok {
		return Square{}, false
	}
	return g.squares[i], true
}

// Squares returns a copy of all squares in enumeration order.
func (g *Grid) Squares() []Square {
	return append([]Square(nil), g.squares...)
}

// Each calls fn for every square in enumeration order.
func (g *Grid) Each(fn func(i int, sq Square)) {
	for i, sq := range g.squares {
		fn(i, sq)
	}
}

// Count returns how many squares are in status st.
func (g *Grid) Count(st Status) int {
	n := 0
	for _, sq := range g.squares {
		if sq.Status == st {
			n++
		}
	}
	return n
}

// Edit starts a copy-on-write edit of g. g itself is never modified.
func (g *Grid) Edit() *Editor {
	return &Editor{base: g}
}

// Editor accumulates square replacements on top of a base grid and produces
// a new snapshot. The squares slice is copied on the first Set only.
type Editor struct {
	base    *Grid
	squares []Square
}

// Lookup returns the current (possibly edited) square with the given id.
func (e *Editor) Lookup(id string) (Square, bool) {
	i, ok := e.base.index[id]
	if !ok {
		return Square{}, false
	}
	if e.squares != nil {
		return e.squares[i], true
	}
	return e.base.squares[i], true
}

// Each calls fn for every current square in enumeration order.
func (e *Editor) Each(fn func(i int, sq Square)) {
	squares := e.squares
	if squares == nil {
		squares = e.base.squares
	}
	for i, sq := range squares {
		fn(i, sq)
	}
}

// Set replaces the square with the same id. Unknown ids are ignored and
// reported as false. Position and size must not change.
func (e *Editor) Set(sq Square) bool {
	i, ok := e.base.index[sq.ID]
	if !ok {
		return false
	}
	if e.squares == nil {
		e.squares = append([]Square(nil), e.base.squares...)
	}
	e.squares[i] = sq
	return true
}

// Grid returns the edited snapshot. Index and occupancy maps are shared with
// the base because ids and footprints never change. The editor stays usable;
// later Sets copy again and never touch the returned snapshot.
func (e *Editor) Grid() *Grid {
	if e.squares == nil {
		return e.base
	}
	e.base = &Grid{
		Width:   e.base.Width,
		Height:  e.base.Height,
		squares: e.squares,
		index:   e.base.index,
		owner:   e.base.owner,
	}
	e.squares = nil
	return e.base
}
