package board

import "errors"

// Recoverable user-input errors (spec §7): these are returned, never
// panicked, because they indicate a caller passed bad input rather than
// violated an internal invariant.
var (
	// ErrOutOfBounds is returned by GetPieceAt for a row/col off the grid.
	ErrOutOfBounds = errors.New("board: row/col out of bounds")

	// ErrMalformedFEN is wrapped around any structural problem found while
	// parsing a starting-position string.
	ErrMalformedFEN = errors.New("board: malformed FEN")
)
