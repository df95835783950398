// SPDX-License-Identifier: MIT

// Package numeric is the scalar kernel under every matrix operation.
//
// It offers two arithmetic regimes over uint64 cells:
//
//   - Unbounded: exact 64-bit arithmetic that reports ErrOverflow/ErrUnderflow
//     instead of wrapping around.
//   - Modular(m): arithmetic in ℤ/mℤ on canonical residues [0, m), computed
//     without any intermediate overflow for every 1 ≤ m ≤ MaxUint64.
//
// The regime is carried by the Modulus value. Modular(0) is rejected, so a
// real modulus can never be confused with "no modulus". The free functions
// (CheckedAdd, CheckedMul, MulMod, SubMod, ...) are the raw kernel; Modulus
// dispatches to them.
//
// Everything here is pure: no state, no allocation, no I/O.
package numeric
