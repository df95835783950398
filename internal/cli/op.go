// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/matpow/codec"
	"github.com/katalvlaran/matpow/internal/harness"
	"github.com/katalvlaran/matpow/internal/logging"
	"github.com/katalvlaran/matpow/matrix"
	"github.com/katalvlaran/matpow/numeric"
)

// OpOptions holds flags for the op command.
type OpOptions struct {
	FieldSize uint64
	Exponent  uint64
	Scalar    uint64
	Rows      string // "start:end", inclusive
	Cols      string // "start:end", inclusive
}

// NewOpCommand creates the op command.
func NewOpCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &OpOptions{}

	names := make([]string, len(harness.Ops))
	for i, op := range harness.Ops {
		names[i] = string(op)
	}

	cmd := &cobra.Command{
		Use:   "op <name> <matrix> [matrix]",
		Short: "Run one matrix operation",
		Long: `Run one matrix operation and print the result.

Operations: ` + strings.Join(names, ", ") + `.
sum, subtract and multiply take two matrices; the others take one.

Examples:
  matpow op multiply "(1,2;3,4)" "(5,6;7,8)" --field 100
  matpow op submatrix "(1,2,3;4,5,6)" --rows 0:1 --cols 1:2`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOp(rootOpts, opts, args, cmd)
		},
	}

	cmd.Flags().Uint64VarP(&opts.FieldSize, "field", "f", 0, "field size m (0 = unbounded)")
	cmd.Flags().Uint64VarP(&opts.Exponent, "exp", "e", 2, "exponent (power)")
	cmd.Flags().Uint64Var(&opts.Scalar, "scalar", 1, "scalar (scale)")
	cmd.Flags().StringVar(&opts.Rows, "rows", "0:0", "inclusive row window start:end (submatrix)")
	cmd.Flags().StringVar(&opts.Cols, "cols", "0:0", "inclusive column window start:end (submatrix)")

	return cmd
}

func runOp(rootOpts *RootOptions, opts *OpOptions, args []string, cmd *cobra.Command) error {
	op, err := harness.ParseOp(args[0])
	if err != nil {
		return WrapExitError(ExitFailure, "op", err)
	}

	req := harness.Request{Op: op, Exponent: opts.Exponent, Scalar: opts.Scalar}
	if op == harness.OpSubmatrix {
		if req.Bounds.RowStart, req.Bounds.RowEnd, err = parseSpan(opts.Rows); err != nil {
			return WrapExitError(ExitFailure, "--rows", err)
		}
		if req.Bounds.ColStart, req.Bounds.ColEnd, err = parseSpan(opts.Cols); err != nil {
			return WrapExitError(ExitFailure, "--cols", err)
		}
	}

	mod := numeric.FromFieldSize(opts.FieldSize)
	for i, text := range args[1:] {
		m, err := codec.Parse(text, mod)
		if err != nil {
			return WrapExitError(ExitFailure, fmt.Sprintf("parse matrix %d", i+1), err)
		}
		defer m.Release()
		req.Operands = append(req.Operands, m)
	}

	log := rootOpts.Logger()
	if op == harness.OpPower {
		req.Options = []matrix.Option{logging.StepHook(log)}
	}
	res, err := harness.Execute(req)
	if err != nil {
		return WrapExitError(ExitFailure, string(op), err)
	}
	defer res.Matrix.Release()

	log.Info("operation computed", zap.String("op", string(op)), zap.Duration("elapsed", res.Elapsed))
	fmt.Fprintln(cmd.OutOrStdout(), codec.MustFormat(res.Matrix))

	return nil
}

// parseSpan reads "start:end" into two non-negative indices.
func parseSpan(s string) (start, end int, err error) {
	lo, hi, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("%q: want start:end", s)
	}
	if start, err = strconv.Atoi(strings.TrimSpace(lo)); err != nil || start < 0 {
		return 0, 0, fmt.Errorf("%q: bad start", s)
	}
	if end, err = strconv.Atoi(strings.TrimSpace(hi)); err != nil || end < 0 {
		return 0, 0, fmt.Errorf("%q: bad end", s)
	}

	return start, end, nil
}
