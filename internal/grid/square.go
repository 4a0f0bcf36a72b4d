package grid

import "fmt"

// Status is the lifecycle stage of a square.
type Status uint8

const (
	StatusLocked Status = iota
	StatusAvailable
	StatusDead
)

func (s Status) String() string {
	switch s {
	case StatusLocked:
		return "locked"
	case StatusAvailable:
		return "available"
	case StatusDead:
		return "dead"
	}
	return "unknown"
}

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Size is a square's footprint in grid cells.
type Size struct {
	Width, Height int
}

// The three footprint classes a generated square can have.
var (
	Size1x1 = Size{Width: 1, Height: 1}
	Size1x2 = Size{Width: 1, Height: 2}
	Size2x2 = Size{Width: 2, Height: 2}
)

// Multiplier is the health/income factor for the footprint: 1, 2 or 4.
func (s Size) Multiplier() float64 {
	return float64(s.Width * s.Height)
}

// TreasureType identifies what a treasure grants.
type TreasureType uint8

const (
	TreasureNone TreasureType = iota
	TreasureDamage
	TreasureAutoClick
	TreasureCoins
	TreasureLuck
)

func (t TreasureType) String() string {
	switch t {
	case TreasureDamage:
		return "damage"
	case TreasureAutoClick:
		return "autoclick"
	case TreasureCoins:
		return "coins"
	case TreasureLuck:
		return "luck"
	}
	return "none"
}

// Treasure is a one-shot reward granted when its square dies.
// The zero value means no treasure.
type Treasure struct {
	Type  TreasureType
	Value float64
}

// Present reports whether t grants anything.
func (t Treasure) Present() bool { return t.Type != TreasureNone }

// Role is the tagged variant describing what kind of square this is:
// Plain, Gate or Portal.
type Role interface {
	role()
}

// Plain is an ordinary square.
type Plain struct{}

// Gate blocks the next level until Requirement kills were made on its level.
type Gate struct {
	Requirement int
}

// Portal surfaces Target, the gate of its own level, when destroyed.
type Portal struct {
	Target string
}

func (Plain) role()  {}
func (Gate) role()   {}
func (Portal) role() {}

// Square is one cell or cluster of the grid.
type Square struct {
	ID             string
	Position       Point
	Size           Size
	Health         float64
	MaxHealth      float64
	Status         Status
	Boss           bool
	Role           Role
	Level          int
	Treasure       Treasure
	MoneyPerSecond float64
	// Adjacent lists the ids this square may reveal when it dies.
	// Shared between snapshots; never modified after generation.
	Adjacent []string
}

// ID formats the stable identity of the square whose top-left cell is (x, y).
func ID(x, y int) string {
	return fmt.Sprintf("%d-%d", x, y)
}

// Gate returns the gate payload when the square is a gate.
func (s Square) Gate() (Gate, bool) {
	g, ok := s.Role.(Gate)
	return g, ok
}

// Portal returns the portal payload when the square is a portal.
func (s Square) Portal() (Portal, bool) {
	p, ok := s.Role.(Portal)
	return p, ok
}

// IsGate reports whether the square is a gate.
func (s Square) IsGate() bool {
	_, ok := s.Role.(Gate)
	return ok
}

// IsPortal reports whether the square is a portal.
func (s Square) IsPortal() bool {
	_, ok := s.Role.(Portal)
	return ok
}

// Covers reports whether the footprint of s contains the cell (x, y).
func (s Square) Covers(x, y int) bool {
	return x >= s.Position.X && x < s.Position.X+s.Size.Width &&
		y >= s.Position.Y && y < s.Position.Y+s.Size.Height
}
