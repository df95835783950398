// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep every stored cell a canonical residue of the matrix modulus.
//   - Make ownership explicit: constructors hand out fresh storage, Release frees it.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Release: O(1).

package matrix

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/matpow/numeric"
)

// MaxCells caps rows*cols for a single matrix (2^27 cells = 1 GiB of uint64).
// Larger requests fail with ErrAllocation before touching the allocator.
const MaxCells = 1 << 27

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps a sentinel with the Dense method and the callsite indices.
// Shape: "Dense.<method>(row,col): <sentinel>"; errors.Is still matches.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of uint64 cells.
//   - r,c hold dimensions (rows, cols); both are 0 only after Release.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - mod is the arithmetic regime; every cell satisfies mod.Contains(cell).
type Dense struct {
	r, c int             // row and column counts (>= 1 while live)
	data []uint64        // contiguous row-major storage (len == r*c)
	mod  numeric.Modulus // Unbounded or Modular(m)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix in the regime mod.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidSize.
//   - Stage 2: guard rows*cols against int overflow and MaxCells; else ErrAllocation.
//   - Stage 3: allocate one zero-filled buffer.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Zero is a canonical residue of every modulus, so the fresh grid already
//     satisfies the cell invariant.
//
// Errors:
//   - ErrInvalidSize, ErrAllocation.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, mod numeric.Modulus) (*Dense, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrInvalidSize
	}
	if rows > MaxCells/cols {
		return nil, ErrAllocation
	}

	return &Dense{
		r:    rows,
		c:    cols,
		data: make([]uint64, rows*cols),
		mod:  mod,
	}, nil
}

// NewIdentity creates the n×n identity (main diagonal 1, rest 0) in regime mod.
// Under Modular(1) the ring is trivial and the diagonal reduces to 0.
// Complexity: Time O(n²), Space O(n²).
func NewIdentity(n int, mod numeric.Modulus) (*Dense, error) {
	res, err := NewDense(n, n, mod)
	if err != nil {
		return nil, err
	}
	one := mod.Reduce(1)
	for i := 0; i < n; i++ {
		res.data[i*n+i] = one
	}

	return res, nil
}

// NewFromRows builds a matrix from row slices, reducing every value into mod.
//
// Implementation:
//   - Stage 1: require at least one row; all rows must be non-empty and equally long.
//   - Stage 2: allocate via NewDense, then copy row by row with Reduce.
//
// Errors:
//   - ErrInvalidSize (no rows / empty row), ErrDimensionMismatch (ragged rows),
//     ErrAllocation.
//
// Complexity:
//   - Time O(r*c), Space O(r*c). The input slices are not retained.
func NewFromRows(rows [][]uint64, mod numeric.Modulus) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidSize
	}
	cols := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return nil, fmt.Errorf("NewFromRows: row %d has %d cells, want %d: %w",
				i, len(rows[i]), cols, ErrDimensionMismatch)
		}
	}
	res, err := NewDense(len(rows), cols, mod)
	if err != nil {
		return nil, err
	}
	var i, j, base int
	for i = 0; i < res.r; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			res.data[base+j] = mod.Reduce(rows[i][j])
		}
	}

	return res, nil
}

// Rows returns the row count (0 after Release). Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count (0 after Release). Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Modulus returns the arithmetic regime of the matrix.
func (m *Dense) Modulus() numeric.Modulus { return m.mod }

// IsSquare reports whether Rows() == Cols() on a live matrix.
func (m *Dense) IsSquare() bool { return m.r > 0 && m.r == m.c }

// indexOf bounds-checks (row,col) and returns the row-major offset.
// Returns the bare ErrOutOfRange; At/Set attach coordinates.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the cell at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (uint64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores the canonical residue of v at (row, col).
//
// Behavior highlights:
//   - Values at or above the modulus are reduced, never rejected; the cell
//     invariant holds after every successful Set.
//   - Set is meant for construction; results handed out by operations are
//     treated as immutable by convention.
//
// Errors:
//   - ErrOutOfRange for bad indices (also on a released matrix).
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v uint64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = m.mod.Reduce(v)

	return nil
}

// Clone returns a deep copy: same shape, same modulus, independent buffer.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidSize (released source).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Clone() (*Dense, error) {
	if err := ValidateMatrix(m); err != nil {
		return nil, matrixErrorf(opClone, err)
	}
	cp := make([]uint64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp, mod: m.mod}, nil
}

// Release drops the grid and resets the shape to 0×0.
// Safe on nil and on an already released matrix (idempotent no-op).
// Any later operation on m fails with ErrInvalidSize.
// Complexity: O(1).
func (m *Dense) Release() {
	if m == nil {
		return
	}
	m.data = nil
	m.r, m.c = 0, 0
}

// Released reports whether m is nil or has been released.
func (m *Dense) Released() bool { return m == nil || m.data == nil }

// Equal reports whether a and b have the same shape, modulus and cells.
// Two nil matrices are equal; nil and non-nil are not.
// Complexity: O(r*c).
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c || m.mod != o.mod {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// RowsCopy returns the cells as freshly allocated row slices.
// Complexity: O(r*c).
func (m *Dense) RowsCopy() [][]uint64 {
	out := make([][]uint64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]uint64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// String renders rows as "[a, b]\n" lines for diagnostics.
// For the stable textual form use package codec.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(strconv.FormatUint(m.data[base+j], 10))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each cell (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Read-only; no allocations.
// Complexity: O(r*c).
func (m *Dense) Do(f func(i, j int, v uint64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}
