package game

import "errors"

// Errors reported by the board model. All are synchronous and non-retryable;
// the presentation layer surfaces them and the session recovers via a new game.
var (
	// ErrConfiguration indicates invalid dimensions or mine count at board creation.
	ErrConfiguration = errors.New("invalid board configuration")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("coordinates out of bounds")
	// ErrInvalidOperation indicates a mutating call on a finished game.
	ErrInvalidOperation = errors.New("operation not allowed")
)
