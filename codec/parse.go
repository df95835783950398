// SPDX-License-Identifier: MIT

package codec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/matpow/matrix"
	"github.com/katalvlaran/matpow/numeric"
)

// MaxCellDigits is the longest accepted digit run of a single cell.
const MaxCellDigits = 31

const (
	opParse  = "Parse"
	opFormat = "Format"

	blanks = " \t"
)

// parseErrorf wraps err with the operation tag and a cell position.
func parseErrorf(row, col int, err error) error {
	return fmt.Errorf("%s: cell (%d,%d): %w", opParse, row, col, err)
}

// Parse reads text in the "(a,b;c,d)" grammar into a new matrix over mod.
//
// Implementation:
//   - Stage 1: trim surrounding whitespace; require the outer parentheses.
//   - Stage 2: split rows on ';' and cells on ','; every row must have the
//     width of the first one.
//   - Stage 3: each cell is a blank-trimmed run of 1..MaxCellDigits decimal
//     digits that fits in uint64.
//   - Stage 4: matrix.NewFromRows reduces every value into mod.
//
// Errors:
//   - ErrEmpty, ErrInvalidFormat, ErrCellTooLong, ErrConversion (all wrap ErrFormat).
func Parse(text string, mod numeric.Modulus) (*matrix.Dense, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil, fmt.Errorf("%s: %w", opParse, ErrEmpty)
	}
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return nil, fmt.Errorf("%s: %q: missing parentheses: %w", opParse, s, ErrInvalidFormat)
	}
	body := s[1 : len(s)-1]
	if strings.Trim(body, blanks) == "" {
		return nil, fmt.Errorf("%s: %w", opParse, ErrEmpty)
	}
	if strings.ContainsAny(body, "()") {
		return nil, fmt.Errorf("%s: nested parentheses: %w", opParse, ErrInvalidFormat)
	}

	lines := strings.Split(body, ";")
	rows := make([][]uint64, len(lines))
	width := -1
	for i, line := range lines {
		cells := strings.Split(line, ",")
		if width < 0 {
			width = len(cells)
		} else if len(cells) != width {
			return nil, fmt.Errorf("%s: row %d has %d cells, want %d: %w",
				opParse, i, len(cells), width, ErrInvalidFormat)
		}

		rows[i] = make([]uint64, width)
		for j, cell := range cells {
			v, err := parseCell(strings.Trim(cell, blanks))
			if err != nil {
				return nil, parseErrorf(i, j, err)
			}
			rows[i][j] = v
		}
	}

	m, err := matrix.NewFromRows(rows, mod)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opParse, ErrConversion, err)
	}

	return m, nil
}

// parseCell converts one blank-trimmed cell token.
func parseCell(tok string) (uint64, error) {
	if tok == "" {
		return 0, fmt.Errorf("empty cell: %w", ErrInvalidFormat)
	}
	if len(tok) > MaxCellDigits {
		return 0, fmt.Errorf("%d digits: %w", len(tok), ErrCellTooLong)
	}
	for k := 0; k < len(tok); k++ {
		if tok[k] < '0' || tok[k] > '9' {
			return 0, fmt.Errorf("unexpected %q: %w", tok[k], ErrInvalidFormat)
		}
	}

	v, err := strconv.ParseUint(tok, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%s exceeds %d: %w", tok, numeric.MaxValue, ErrConversion)
		}
		return 0, fmt.Errorf("%s: %w", tok, ErrConversion)
	}

	return v, nil
}
