// SPDX-License-Identifier: MIT

package harness

import (
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/matpow/matrix"
)

// Op names one harness operation.
type Op string

// Supported operations.
const (
	OpPower     Op = "power"
	OpSum       Op = "sum"
	OpSubtract  Op = "subtract"
	OpScale     Op = "scale"
	OpTranspose Op = "transpose"
	OpSubmatrix Op = "submatrix"
	OpMultiply  Op = "multiply"
)

// Ops lists every operation in display order.
var Ops = []Op{OpPower, OpSum, OpSubtract, OpScale, OpTranspose, OpSubmatrix, OpMultiply}

// ParseOp resolves a case-insensitive operation name.
func ParseOp(s string) (Op, error) {
	name := Op(strings.ToLower(strings.TrimSpace(s)))
	for _, op := range Ops {
		if op == name {
			return op, nil
		}
	}

	return "", fmt.Errorf("%q: %w", s, ErrUnknownOp)
}

// Arity is the number of operands op consumes, or 0 for an unknown op.
func (op Op) Arity() int {
	switch op {
	case OpSum, OpSubtract, OpMultiply:
		return 2
	case OpPower, OpScale, OpTranspose, OpSubmatrix:
		return 1
	default:
		return 0
	}
}

// Window is an inclusive submatrix window.
type Window struct {
	RowStart, RowEnd int
	ColStart, ColEnd int
}

// Request describes one operation. Exponent is read by power, Scalar by
// scale and Bounds by submatrix; other fields are ignored.
type Request struct {
	Op       Op
	Operands []*matrix.Dense
	Exponent uint64
	Scalar   uint64
	Bounds   Window
	Options  []matrix.Option // forwarded to matrix.Power
}

// Result is a fresh matrix owned by the caller plus the time spent in the core.
type Result struct {
	Matrix  *matrix.Dense
	Elapsed time.Duration
}

// Execute validates the operand count, then runs and times the operation.
// Elapsed is set even when the core fails, so that failed cases can still be
// reported with their duration.
func Execute(req Request) (Result, error) {
	want := req.Op.Arity()
	if want == 0 {
		return Result{}, fmt.Errorf("%q: %w", req.Op, ErrUnknownOp)
	}
	if len(req.Operands) != want {
		return Result{}, fmt.Errorf("%s: got %d, want %d: %w", req.Op, len(req.Operands), want, ErrOperands)
	}

	var (
		m   *matrix.Dense
		err error
		a   = req.Operands[0]
	)
	start := time.Now()
	switch req.Op {
	case OpPower:
		m, err = matrix.Power(a, req.Exponent, req.Options...)
	case OpSum:
		m, err = matrix.Sum(a, req.Operands[1])
	case OpSubtract:
		m, err = matrix.Subtract(a, req.Operands[1])
	case OpMultiply:
		m, err = matrix.Mul(a, req.Operands[1])
	case OpScale:
		m, err = matrix.Scale(a, req.Scalar)
	case OpTranspose:
		m, err = matrix.Transpose(a)
	case OpSubmatrix:
		w := req.Bounds
		m, err = matrix.Submatrix(a, w.RowStart, w.RowEnd, w.ColStart, w.ColEnd)
	}

	return Result{Matrix: m, Elapsed: time.Since(start)}, err
}
