// SPDX-License-Identifier: MIT

package numeric_test

import (
	"math"
	"math/bits"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matpow/numeric"
)

// wideMulMod is the widened-precision reference: 128-bit product, 128/64 remainder.
func wideMulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)

	return bits.Rem64(hi, lo, m)
}

func TestCheckedAdd(t *testing.T) {
	got, err := numeric.CheckedAdd(2, 3)
	require.NoError(t, err)
	require.Equal(t, uint64(5), got)

	got, err = numeric.CheckedAdd(math.MaxUint64-1, 1)
	require.NoError(t, err)
	require.Equal(t, uint64(math.MaxUint64), got)

	_, err = numeric.CheckedAdd(math.MaxUint64, 1)
	require.ErrorIs(t, err, numeric.ErrOverflow)

	_, err = numeric.CheckedAdd(1<<63, 1<<63)
	require.ErrorIs(t, err, numeric.ErrOverflow)
}

func TestCheckedSub(t *testing.T) {
	got, err := numeric.CheckedSub(10, 10)
	require.NoError(t, err)
	require.Zero(t, got)

	_, err = numeric.CheckedSub(3, 4)
	require.ErrorIs(t, err, numeric.ErrUnderflow)
}

func TestCheckedMul(t *testing.T) {
	got, err := numeric.CheckedMul(0, math.MaxUint64)
	require.NoError(t, err)
	require.Zero(t, got)

	got, err = numeric.CheckedMul(1<<32, 1<<31)
	require.NoError(t, err)
	require.Equal(t, uint64(1)<<63, got)

	_, err = numeric.CheckedMul(1<<32, 1<<32)
	require.ErrorIs(t, err, numeric.ErrOverflow)

	_, err = numeric.CheckedMul(3, math.MaxUint64/2)
	require.ErrorIs(t, err, numeric.ErrOverflow)
}

func TestMulMod_ZeroModulusIsChecked(t *testing.T) {
	got, err := numeric.MulMod(6, 7, 0)
	require.NoError(t, err)
	require.Equal(t, uint64(42), got)

	_, err = numeric.MulMod(1<<32, 1<<32, 0)
	require.ErrorIs(t, err, numeric.ErrOverflow)
}

func TestMulMod_Table(t *testing.T) {
	tests := []struct {
		name    string
		a, b, m uint64
		want    uint64
	}{
		{"small", 7, 8, 10, 6},
		{"one", 123456789, 987654321, 1, 0},
		{"operands above m", 1005, 2003, 1000, 15},
		{"zero a", 0, 99, 7, 0},
		{"zero b", 99, 0, 7, 0},
		{"max modulus", math.MaxUint64 - 1, math.MaxUint64 - 1, math.MaxUint64, 1},
		{"near max", math.MaxUint64 - 2, 2, math.MaxUint64, math.MaxUint64 - 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := numeric.MulMod(tc.a, tc.b, tc.m)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
			require.Equal(t, wideMulMod(tc.a, tc.b, tc.m), got)
		})
	}
}

// MulMod must agree with (a*b) % m for a, b < 2^32 and any 0 < m < 2^64.
func TestMulMod_MatchesWideReference_Small(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 5000; i++ {
		a := uint64(rng.Uint32())
		b := uint64(rng.Uint32())
		m := rng.Uint64()
		if m == 0 {
			m = 1
		}
		got, err := numeric.MulMod(a, b, m)
		require.NoError(t, err)
		require.Equal(t, (a*b)%m, got, "a=%d b=%d m=%d", a, b, m)
	}
}

// Full-width operands exercise the double-and-add path where a*b does not fit.
func TestMulMod_MatchesWideReference_Full(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 5000; i++ {
		a, b, m := rng.Uint64(), rng.Uint64(), rng.Uint64()|1<<63
		got, err := numeric.MulMod(a, b, m)
		require.NoError(t, err)
		require.Equal(t, wideMulMod(a, b, m), got, "a=%d b=%d m=%d", a, b, m)
	}
}

func TestAddMod_NoOverflowNearMax(t *testing.T) {
	const m = math.MaxUint64
	require.Equal(t, uint64(math.MaxUint64-3), numeric.AddMod(m-1, m-2, m))
	require.Equal(t, uint64(0), numeric.AddMod(m-1, 1, m))
	require.Equal(t, uint64(3), numeric.AddMod(13, 10, 10))
}

func TestSubMod(t *testing.T) {
	require.Equal(t, uint64(2), numeric.SubMod(5, 3, 7))
	require.Equal(t, uint64(5), numeric.SubMod(3, 5, 7))
	require.Equal(t, uint64(0), numeric.SubMod(10, 3, 7))
	// x, y far above m are reduced first.
	require.Equal(t, uint64(6), numeric.SubMod(100, 101, 7))
	require.Equal(t, uint64(math.MaxUint64-1), numeric.SubMod(0, 1, math.MaxUint64))
}

func TestSubMod_RoundTripsAddMod(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for i := 0; i < 2000; i++ {
		m := rng.Uint64N(math.MaxUint64) + 1
		x, y := rng.Uint64()%m, rng.Uint64()%m
		require.Equal(t, x, numeric.SubMod(numeric.AddMod(x, y, m), y, m))
	}
}
