// SPDX-License-Identifier: MIT

// Package harness drives the matrix core the way the matpow tool exposes it:
//
//   - Execute runs one timed operation (power, sum, subtract, scale,
//     transpose, submatrix, multiply) described by a Request.
//   - KnownScenarios / RunKnown replay the fixed known-data cases and print a
//     deterministic report.
//   - Generator runs randomized power cases and writes the CSV and short
//     reports consumed by the plot command.
//
// Cases run sequentially so that the measured durations are not perturbed by
// other work of the same process.
package harness
