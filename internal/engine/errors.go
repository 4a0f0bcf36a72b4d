package engine

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownSquare = errors.New("unknown square")
	ErrNotAvailable  = errors.New("square not available")
	ErrGateLocked    = errors.New("gate still locked")

	ErrUnknownItem       = errors.New("unknown shop item")
	ErrItemHidden        = errors.New("shop item not unlocked yet")
	ErrInsufficientCoins = errors.New("not enough coins")
)

// GateLockedError reports a click on a gate whose level has too few kills.
// It matches ErrGateLocked under errors.Is.
type GateLockedError struct {
	ID     string
	Level  int
	Needed int
	Have   int
}

func (e *GateLockedError) Error() string {
	return fmt.Sprintf("gate %s still locked: level %d needs %d kills, have %d",
		e.ID, e.Level, e.Needed, e.Have)
}

func (e *GateLockedError) Unwrap() error { return ErrGateLocked }
