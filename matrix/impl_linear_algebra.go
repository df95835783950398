// SPDX-License-Identifier: MIT
// Package matrix provides the algebra kernels on Dense: element-wise sum and
// difference, scalar scaling, transpose, submatrix extraction and matrix
// multiplication. All kernels perform strict fail-fast validation, delegate
// every scalar step to the numeric.Modulus of their operands and return a
// freshly allocated result.
//
// Notes:
//   - Preconditions are checked before any allocation.
//   - A failure after allocation (overflow/underflow in cell (i,j)) releases the
//     partial result before the error is returned; nothing leaks.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opClone     = "Clone"
	opSum       = "Sum"
	opSubtract  = "Subtract"
	opScale     = "Scale"
	opTranspose = "Transpose"
	opSubmatrix = "Submatrix"
	opMul       = "Mul"
	opPower     = "Power"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// cellErrorf wraps an arithmetic failure with the operation tag and the cell
// being computed.
func cellErrorf(tag string, i, j int, err error) error {
	return fmt.Errorf("%s: cell (%d,%d): %w", tag, i, j, err)
}

// elementwise computes out[i] = f(a[i], b[i]) over two same-shaped operands.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b); allocate result with a's modulus.
//   - Stage 2: single flat loop over the row-major buffers.
//   - Stage 3: on the first failing cell release the result and report (i,j).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func elementwise(a, b *Dense, tag string, f func(x, y uint64) (uint64, error)) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	res, err := NewDense(a.r, a.c, a.mod)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	var v uint64
	for k := range res.data {
		if v, err = f(a.data[k], b.data[k]); err != nil {
			res.Release()
			return nil, cellErrorf(tag, k/a.c, k%a.c, err)
		}
		res.data[k] = v
	}

	return res, nil
}

// Sum returns a + b cell-wise.
//
// Behavior highlights:
//   - Modular: (a[i][j] + b[i][j]) mod m, never overflows.
//   - Unbounded: checked add; the first overflowing cell aborts the operation.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidSize, ErrDimensionMismatch, ErrModulusMismatch,
//     numeric.ErrOverflow.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sum(a, b *Dense) (*Dense, error) {
	if a == nil {
		return nil, matrixErrorf(opSum, ValidateNotNil(a))
	}

	return elementwise(a, b, opSum, a.mod.Add)
}

// Subtract returns a - b cell-wise.
//
// Behavior highlights:
//   - Modular: canonical residue of a[i][j] - b[i][j] (numeric.SubMod).
//   - Unbounded: there are no negative cells; a[i][j] < b[i][j] fails with
//     numeric.ErrUnderflow.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidSize, ErrDimensionMismatch, ErrModulusMismatch,
//     numeric.ErrUnderflow.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Subtract(a, b *Dense) (*Dense, error) {
	if a == nil {
		return nil, matrixErrorf(opSubtract, ValidateNotNil(a))
	}

	return elementwise(a, b, opSubtract, a.mod.Sub)
}

// Scale returns scalar·a cell-wise.
//
// Behavior highlights:
//   - Modular: numeric.MulMod(a[i][j], scalar, m); the scalar may exceed m.
//   - Unbounded: checked multiply.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidSize, numeric.ErrOverflow.
//
// Complexity:
//   - Time O(r*c·log m) modular, O(r*c) unbounded; Space O(r*c).
func Scale(a *Dense, scalar uint64) (*Dense, error) {
	if err := ValidateMatrix(a); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := NewDense(a.r, a.c, a.mod)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	var v uint64
	for k := range res.data {
		if v, err = a.mod.Mul(a.data[k], scalar); err != nil {
			res.Release()
			return nil, cellErrorf(opScale, k/a.c, k%a.c, err)
		}
		res.data[k] = v
	}

	return res, nil
}

// Transpose returns a new c×r matrix with res[j][i] = a[i][j] and the same modulus.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidSize.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(a *Dense) (*Dense, error) {
	if err := ValidateMatrix(a); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := NewDense(a.c, a.r, a.mod)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j, base int
	for i = 0; i < a.r; i++ {
		base = i * a.c
		for j = 0; j < a.c; j++ {
			res.data[j*a.r+i] = a.data[base+j]
		}
	}

	return res, nil
}

// Submatrix copies the inclusive window rows r0..r1, cols c0..c1 of a.
//
// Implementation:
//   - Stage 1: ValidateMatrix(a), then ValidateWindow (0 ≤ r0 ≤ r1 < rows,
//     0 ≤ c0 ≤ c1 < cols).
//   - Stage 2: allocate (r1-r0+1)×(c1-c0+1) and copy row slices.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidSize, ErrDimensionMismatch (bad window).
//
// Complexity:
//   - Time O(r'*c'), Space O(r'*c').
func Submatrix(a *Dense, r0, r1, c0, c1 int) (*Dense, error) {
	if err := ValidateMatrix(a); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	if err := ValidateWindow(a, r0, r1, c0, c1); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	rows, cols := r1-r0+1, c1-c0+1
	res, err := NewDense(rows, cols, a.mod)
	if err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}

	var i, src int
	for i = 0; i < rows; i++ {
		src = (r0+i)*a.c + c0
		copy(res.data[i*cols:(i+1)*cols], a.data[src:src+cols])
	}

	return res, nil
}

// Mul returns the matrix product a × b.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (nil → size → a.Cols == b.Rows → modulus).
//   - Stage 2: allocate a.Rows×b.Cols result with the shared modulus.
//   - Stage 3: i-k-j loop over the flat buffers; every term goes through
//     mod.Mul and every partial sum through mod.Add, so the modular path never
//     overflows and the unbounded path fails fast on the first overflow.
//
// Behavior highlights:
//   - Zero left factors are skipped; they contribute nothing in either regime.
//   - Unbounded partial sums only grow, so an overflow is reported iff the
//     exact dot product does not fit, independent of loop order.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidSize, ErrDimensionMismatch, ErrModulusMismatch,
//     numeric.ErrOverflow (Unbounded only).
//
// Complexity:
//   - Time O(rows_a · cols_a · cols_b) scalar steps (each O(log m) when
//     modular), Space O(rows_a · cols_b).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.r, a.c, b.c
	res, err := NewDense(aRows, bCols, a.mod)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	mod := a.mod
	var (
		i, k, j          int
		rowA, rowB, rowR int
		av, term, acc    uint64
	)
	for i = 0; i < aRows; i++ {
		rowA = i * aCols
		rowR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowA+k]
			if av == 0 {
				continue
			}
			rowB = k * bCols
			for j = 0; j < bCols; j++ {
				if term, err = mod.Mul(av, b.data[rowB+j]); err != nil {
					res.Release()
					return nil, cellErrorf(opMul, i, j, err)
				}
				if acc, err = mod.Add(res.data[rowR+j], term); err != nil {
					res.Release()
					return nil, cellErrorf(opMul, i, j, err)
				}
				res.data[rowR+j] = acc
			}
		}
	}

	return res, nil
}
