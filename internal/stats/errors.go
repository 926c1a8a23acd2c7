package stats

import "errors"

var (
	// ErrMissingMaxStats means the game-wide maximum lookup lacks a usable value.
	ErrMissingMaxStats = errors.New("missing game max stats")
	// ErrDivisionByZero means a zero maximum reached a progress computation.
	ErrDivisionByZero = errors.New("game max stat is zero")
	// ErrInvalidStatIndex means a stat index outside 0..2.
	ErrInvalidStatIndex = errors.New("invalid stat index; must be 0..2")
)
