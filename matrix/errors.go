package matrix

import "errors"

// Sentinel errors for the matrix package. Algorithms return these directly;
// callers match with errors.Is. No panics on caller-triggered conditions.
var (
	// ErrBadShape is returned when a requested shape is invalid (rows/cols <= 0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNegativeWeight signals a negative entry where only non-negative costs are valid.
	ErrNegativeWeight = errors.New("matrix: negative weight")
)
