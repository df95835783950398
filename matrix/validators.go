// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for the precondition contract
//     shared by every algebra and power entry point.
//   - Return sentinel errors tagged with the validator name so call sites can
//     wrap once more with the operation tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic, O(1) and allocate nothing on success.
//
// Note:
//  - Composite validators follow a fixed sequence: NotNil → Shape → Dimension → Modulus.

package matrix

import "fmt"

// validatorErrorf wraps an underlying sentinel with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateShape ensures rows ≥ 1 and cols ≥ 1 (fails on released matrices).
// Assumes m is non-nil. Complexity: O(1).
func ValidateShape(m *Dense) error {
	if m.r < 1 || m.c < 1 || len(m.data) != m.r*m.c {
		return validatorErrorf("ValidateShape", ErrInvalidSize)
	}

	return nil
}

// ValidateMatrix is NotNil → Shape for a single operand.
func ValidateMatrix(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	return ValidateShape(m)
}

// validateOperands runs ValidateMatrix over a then b.
func validateOperands(a, b *Dense) error {
	if err := ValidateMatrix(a); err != nil {
		return err
	}

	return ValidateMatrix(b)
}

// ValidateSameModulus checks a.Modulus() == b.Modulus().
// Assumes both are non-nil. Complexity: O(1).
func ValidateSameModulus(a, b *Dense) error {
	if a.mod != b.mod {
		return validatorErrorf("ValidateSameModulus", ErrModulusMismatch)
	}

	return nil
}

// ValidateSameShape checks equal rows and cols.
// Assumes both are non-nil. Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape is the full Sum/Subtract contract:
// NotNil → Shape (a, b) → SameShape → SameModulus.
func ValidateBinarySameShape(a, b *Dense) error {
	if err := validateOperands(a, b); err != nil {
		return err
	}
	if err := ValidateSameShape(a, b); err != nil {
		return err
	}

	return ValidateSameModulus(a, b)
}

// ValidateMulCompatible is the full Mul contract:
// NotNil → Shape (a, b) → a.Cols == b.Rows → SameModulus.
func ValidateMulCompatible(a, b *Dense) error {
	if err := validateOperands(a, b); err != nil {
		return err
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return ValidateSameModulus(a, b)
}

// ValidateSquare is NotNil → Shape → Rows == Cols (ErrNotSquare).
func ValidateSquare(m *Dense) error {
	if err := ValidateMatrix(m); err != nil {
		return err
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNotSquare)
	}

	return nil
}

// ValidateWindow checks inclusive Submatrix bounds:
// 0 ≤ r0 ≤ r1 < rows and 0 ≤ c0 ≤ c1 < cols, else ErrDimensionMismatch.
// Assumes m passed ValidateMatrix.
func ValidateWindow(m *Dense, r0, r1, c0, c1 int) error {
	if r0 < 0 || r0 > r1 || r1 >= m.r {
		return validatorErrorf("ValidateWindow: Rows", ErrDimensionMismatch)
	}
	if c0 < 0 || c0 > c1 || c1 >= m.c {
		return validatorErrorf("ValidateWindow: Columns", ErrDimensionMismatch)
	}

	return nil
}
