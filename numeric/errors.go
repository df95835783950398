// SPDX-License-Identifier: MIT

package numeric

import "errors"

// Every message is prefixed with "numeric: ..." for grep-ability.
// Callers match with errors.Is; matrix kernels wrap these with cell coordinates.

var (
	// ErrOverflow is returned when an unbounded add/multiply exceeds MaxUint64.
	ErrOverflow = errors.New("numeric: uint64 overflow")

	// ErrUnderflow is returned when an unbounded subtraction would go below zero.
	ErrUnderflow = errors.New("numeric: uint64 underflow")

	// ErrInvalidModulus is returned by Modular(0).
	ErrInvalidModulus = errors.New("numeric: modulus must be >= 1")
)
