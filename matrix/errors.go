// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (or the numeric ones
// they propagate) and tests MUST check them via errors.Is. No operation panics
// on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Operations wrap
// these with their tag ("Mul: ...") through matrixErrorf; callers still match
// with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> size -> dimension/square -> modulus -> arithmetic (numeric.ErrOverflow,
// numeric.ErrUnderflow).

var (
	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidSize is returned when a dimension is < 1, either at creation or
	// on an operand that has already been released.
	ErrInvalidSize = errors.New("matrix: dimensions must be > 0")

	// ErrDimensionMismatch indicates incompatible shapes between operands
	// (Sum/Subtract different shapes, Mul with a.Cols != b.Rows) or invalid
	// Submatrix bounds.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrModulusMismatch indicates that two operands carry different moduli.
	ErrModulusMismatch = errors.New("matrix: modulus mismatch")

	// ErrNotSquare signals that Power was called on a non-square matrix.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrOutOfRange indicates that an At/Set index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrAllocation is returned when the requested grid cannot be allocated
	// (rows*cols overflows int or exceeds MaxCells). It is not retryable.
	ErrAllocation = errors.New("matrix: allocation failed")
)
