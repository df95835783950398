// Package matrix implements square-matrix exponentiation over uint64 cells,
// either with exact overflow-checked arithmetic or in the finite ring ℤ/mℤ.
//
// The package provides:
//
//   - Dense: an owning rows×cols grid in one contiguous row-major buffer,
//     tagged with a numeric.Modulus. Cells are always canonical residues.
//   - Algebra: Sum, Subtract, Scale, Transpose, Submatrix and Mul. Every
//     operation validates eagerly, allocates a fresh result, never aliases an
//     operand and releases its partial result on failure.
//   - Power: binary exponentiation built on Mul alone, O(log e) products of
//     O(n³) each.
//
// Ownership is explicit. A *Dense returned by any constructor or operation
// belongs to the caller, who may Release it; Release is idempotent. There is
// no shared state and no locking: a matrix must not be mutated or released by
// two goroutines at once.
//
// See the examples in this package and codec for the textual form.
package matrix
