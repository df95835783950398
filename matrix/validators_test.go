// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matpow/matrix"
	"github.com/katalvlaran/matpow/numeric"
)

func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(MustRows(t, mod100, []uint64{1})))
}

func TestValidateShape_Released(t *testing.T) {
	m := MustRows(t, mod100, []uint64{1})
	require.NoError(t, matrix.ValidateShape(m))
	m.Release()
	require.ErrorIs(t, matrix.ValidateShape(m), matrix.ErrInvalidSize)
	require.ErrorIs(t, matrix.ValidateMatrix(m), matrix.ErrInvalidSize)
}

func TestValidateBinarySameShape_Priority(t *testing.T) {
	a := MustRows(t, mod100, []uint64{1, 2})
	b := MustRows(t, numeric.Unbounded(), []uint64{1}, []uint64{2})

	// nil beats everything
	require.ErrorIs(t, matrix.ValidateBinarySameShape(nil, b), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(a, nil), matrix.ErrNilMatrix)
	// shape beats modulus
	require.ErrorIs(t, matrix.ValidateBinarySameShape(a, b), matrix.ErrDimensionMismatch)
	// modulus last
	c := MustRows(t, numeric.Unbounded(), []uint64{1, 2})
	require.ErrorIs(t, matrix.ValidateBinarySameShape(a, c), matrix.ErrModulusMismatch)
	require.NoError(t, matrix.ValidateSameShape(a, c))
}

func TestValidateMulCompatible(t *testing.T) {
	a := MustRows(t, mod100, []uint64{1, 2, 3}, []uint64{4, 5, 6})
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, a), matrix.ErrDimensionMismatch)

	b := MustRows(t, numeric.Unbounded(), []uint64{1}, []uint64{2}, []uint64{3})
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, b), matrix.ErrModulusMismatch)

	released := MustRows(t, mod100, []uint64{1})
	released.Release()
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, released), matrix.ErrInvalidSize)
}

func TestValidateSquare(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSquare(MustRows(t, mod100, []uint64{1, 2})), matrix.ErrNotSquare)
	require.NoError(t, matrix.ValidateSquare(MustIdentity(t, 3, mod100)))
}

func TestValidateWindow(t *testing.T) {
	m := MustIdentity(t, 3, mod100)
	require.NoError(t, matrix.ValidateWindow(m, 0, 2, 0, 2))
	require.NoError(t, matrix.ValidateWindow(m, 1, 1, 2, 2))

	bad := [][4]int{
		{-1, 0, 0, 0},
		{2, 1, 0, 0},
		{0, 3, 0, 0},
		{0, 0, -1, 0},
		{0, 0, 2, 1},
		{0, 0, 0, 3},
	}
	for _, w := range bad {
		require.ErrorIs(t, matrix.ValidateWindow(m, w[0], w[1], w[2], w[3]), matrix.ErrDimensionMismatch, "window %v", w)
	}
}
