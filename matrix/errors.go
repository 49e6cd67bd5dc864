// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All functions MUST return these sentinels and tests MUST check them
// via errors.Is. No function panics on user-triggered error conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Do not %w-wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive. Constructors must validate before allocation.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set/FillRow/FillCol) return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Dense was passed where a matrix is
	// required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't. Cost-matrix reduction is only defined for square matrices.
	ErrNonSquare = errors.New("matrix: matrix is not square")
)
