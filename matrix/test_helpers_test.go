// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the store, algebra and power tests.
//   • Compare grids with go-cmp so failures print a readable diff.

package matrix_test

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/katalvlaran/matpow/matrix"
	"github.com/katalvlaran/matpow/numeric"
)

// mod100 is the ring used by the known-data scenarios.
var mod100 = numeric.MustModular(100)

// MustRows builds a matrix from row literals or fails the test.
func MustRows(t testing.TB, mod numeric.Modulus, rows ...[]uint64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows, mod)
	if err != nil {
		t.Fatalf("NewFromRows(%v): %v", rows, err)
	}

	return m
}

// MustIdentity returns I_n or fails the test.
func MustIdentity(t testing.TB, n int, mod numeric.Modulus) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n, mod)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return m
}

// RequireRows fails the test with a cmp diff when m's cells differ from want.
func RequireRows(t testing.TB, want [][]uint64, m *matrix.Dense) {
	t.Helper()
	if m == nil {
		t.Fatalf("matrix is nil, want %v", want)
	}
	if diff := cmp.Diff(want, m.RowsCopy()); diff != "" {
		t.Fatalf("cells mismatch (-want +got):\n%s", diff)
	}
}

// RandomSquare fills an n×n matrix with canonical residues of mod from rng.
func RandomSquare(t testing.TB, rng *rand.Rand, n int, mod numeric.Modulus) *matrix.Dense {
	t.Helper()
	rows := make([][]uint64, n)
	for i := range rows {
		rows[i] = make([]uint64, n)
		for j := range rows[i] {
			rows[i][j] = rng.Uint64()
		}
	}

	return MustRows(t, mod, rows...)
}
