// SPDX-License-Identifier: MIT

// Package codec converts between matrix.Dense values and their textual form.
//
// Grammar (blanks are spaces or tabs and may surround any token):
//
//	matrix := "(" row (";" row)* ")"
//	row    := cell ("," cell)*
//	cell   := digit{1,31}
//
// Example: "(1,2;3,4)" is the 2×2 matrix with rows [1 2] and [3 4].
//
// Parse reduces every cell into the target modulus. Format emits the canonical
// form (no blanks), so Format(Parse(s)) == s for any canonical s whose cells are
// already residues of the modulus.
//
// All parse failures wrap ErrFormat; finer causes are ErrEmpty,
// ErrInvalidFormat, ErrCellTooLong and ErrConversion.
package codec
