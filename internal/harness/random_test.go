// SPDX-License-Identifier: MIT

package harness_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matpow/internal/harness"
	"github.com/katalvlaran/matpow/matrix"
	"github.com/katalvlaran/matpow/numeric"
)

func TestRandomMatrix_Residues(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	mod := numeric.MustModular(7)

	m, err := harness.RandomMatrix(rng, 5, mod)
	require.NoError(t, err)
	require.True(t, m.IsSquare())
	require.Equal(t, 5, m.Rows())
	require.Equal(t, mod, m.Modulus())
	m.Do(func(i, j int, v uint64) bool {
		require.Less(t, v, uint64(7), "cell (%d,%d)", i, j)
		return true
	})
}

func TestRandomMatrix_Deterministic(t *testing.T) {
	a, err := harness.RandomMatrix(rand.New(rand.NewPCG(9, 9)), 3, numeric.Unbounded())
	require.NoError(t, err)
	b, err := harness.RandomMatrix(rand.New(rand.NewPCG(9, 9)), 3, numeric.Unbounded())
	require.NoError(t, err)
	require.True(t, a.Equal(b))
}

func TestRandomMatrix_InvalidSize(t *testing.T) {
	_, err := harness.RandomMatrix(rand.New(rand.NewPCG(1, 1)), 0, mod100)
	require.ErrorIs(t, err, matrix.ErrInvalidSize)
}
