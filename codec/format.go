// SPDX-License-Identifier: MIT

package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/matpow/matrix"
)

// Format renders m in canonical form, e.g. "(7,10;15,22)".
// A nil or released matrix yields an error wrapping both ErrFormat and the
// matrix validation sentinel.
func Format(m *matrix.Dense) (string, error) {
	if err := matrix.ValidateMatrix(m); err != nil {
		return "", fmt.Errorf("%s: %w: %w", opFormat, ErrFormat, err)
	}

	var (
		sb  strings.Builder
		buf [20]byte // len(strconv.FormatUint(math.MaxUint64, 10))
	)
	sb.Grow(2 + m.Rows()*m.Cols()*4)
	sb.WriteByte('(')
	last := m.Cols() - 1
	m.Do(func(i, j int, v uint64) bool {
		if j == 0 && i > 0 {
			sb.WriteByte(';')
		}
		sb.Write(strconv.AppendUint(buf[:0], v, 10))
		if j < last {
			sb.WriteByte(',')
		}
		return true
	})
	sb.WriteByte(')')

	return sb.String(), nil
}

// MustFormat is Format for matrices known to be valid; it panics otherwise.
func MustFormat(m *matrix.Dense) string {
	s, err := Format(m)
	if err != nil {
		panic(err)
	}

	return s
}
