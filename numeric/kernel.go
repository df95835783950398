// SPDX-License-Identifier: MIT

package numeric

import "math"

// MaxValue is the largest representable cell value.
const MaxValue uint64 = math.MaxUint64

// CheckedAdd returns a+b or ErrOverflow when the sum exceeds MaxValue.
// Complexity: O(1).
func CheckedAdd(a, b uint64) (uint64, error) {
	if a > MaxValue-b {
		return 0, ErrOverflow
	}

	return a + b, nil
}

// CheckedSub returns a-b or ErrUnderflow when b > a.
// Complexity: O(1).
func CheckedSub(a, b uint64) (uint64, error) {
	if a < b {
		return 0, ErrUnderflow
	}

	return a - b, nil
}

// CheckedMul returns a*b or ErrOverflow when the product exceeds MaxValue.
// The test is a != 0 && b > MaxValue/a, which needs no wider type.
// Complexity: O(1).
func CheckedMul(a, b uint64) (uint64, error) {
	if a != 0 && b > MaxValue/a {
		return 0, ErrOverflow
	}

	return a * b, nil
}

// AddMod returns (a+b) mod m for m ≥ 1 without intermediate overflow.
//
// Implementation:
//   - Stage 1: reduce both operands into [0, m).
//   - Stage 2: compare a against the distance from b to m; subtracting that
//     distance instead of adding b keeps every value below m.
//
// Complexity: O(1).
//
// Notes:
//   - m == 0 panics with an integer divide by zero, like the % operator.
//     Use Modulus.Add when the regime is not known statically.
func AddMod(a, b, m uint64) uint64 {
	a %= m
	b %= m
	if a >= m-b {
		return a - (m - b)
	}

	return a + b
}

// SubMod returns the canonical residue of (x - y) mod m for m ≥ 1.
// It is the overflow-free form of ((x mod m) - (y mod m) + m) mod m and is
// non-negative regardless of the relative magnitude of x and y.
// Complexity: O(1).
func SubMod(x, y, m uint64) uint64 {
	x %= m
	y %= m
	if x >= y {
		return x - y
	}

	return m - (y - x)
}

// MulMod returns (a*b) mod m without intermediate overflow.
//
// Implementation:
//   - Stage 1: m == 0 means no modulus; delegate to CheckedMul so overflow is
//     reported instead of silently wrapped.
//   - Stage 2: reduce a and b mod m.
//   - Stage 3: double-and-add over the bits of b, least significant first:
//     accumulate a into the result when the bit is set, then double a. Both
//     steps go through AddMod, so nothing ever exceeds m-1.
//
// Errors:
//   - ErrOverflow only when m == 0 and the exact product does not fit.
//
// Complexity:
//   - Time O(log b), Space O(1).
func MulMod(a, b, m uint64) (uint64, error) {
	if m == 0 {
		return CheckedMul(a, b)
	}
	a %= m
	b %= m

	var res uint64
	for b > 0 {
		if b&1 == 1 {
			res = AddMod(res, a, m)
		}
		b >>= 1
		if b > 0 {
			a = AddMod(a, a, m)
		}
	}

	return res, nil
}
