// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/matpow/codec"
	"github.com/katalvlaran/matpow/internal/harness"
	"github.com/katalvlaran/matpow/internal/logging"
	"github.com/katalvlaran/matpow/matrix"
	"github.com/katalvlaran/matpow/numeric"
)

// PowerOptions holds flags for the power command.
type PowerOptions struct {
	Exponent  uint64
	FieldSize uint64
	Grid      bool
}

// NewPowerCommand creates the power command.
func NewPowerCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PowerOptions{}

	cmd := &cobra.Command{
		Use:   "power <matrix>",
		Short: "Raise a square matrix to a power",
		Long: `Raise a square matrix to a non-negative power by binary exponentiation.

Cells are reduced modulo --field; --field 0 computes over unbounded 64-bit
integers and fails on overflow.

Example:
  matpow power "(1,1;1,0)" --exp 10 --field 100`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPower(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().Uint64VarP(&opts.Exponent, "exp", "e", 2, "exponent")
	cmd.Flags().Uint64VarP(&opts.FieldSize, "field", "f", 0, "field size m (0 = unbounded)")
	cmd.Flags().BoolVar(&opts.Grid, "grid", false, "also print the input and result as grids")

	return cmd
}

func runPower(rootOpts *RootOptions, opts *PowerOptions, text string, cmd *cobra.Command) error {
	log := rootOpts.Logger()
	base, err := codec.Parse(text, numeric.FromFieldSize(opts.FieldSize))
	if err != nil {
		return WrapExitError(ExitFailure, "parse matrix", err)
	}
	defer base.Release()

	res, err := harness.Execute(harness.Request{
		Op:       harness.OpPower,
		Operands: []*matrix.Dense{base},
		Exponent: opts.Exponent,
		Options:  []matrix.Option{logging.StepHook(log)},
	})
	if err != nil {
		return WrapExitError(ExitFailure, "power", err)
	}
	defer res.Matrix.Release()

	log.Info("power computed",
		zap.Int("size", base.Rows()),
		zap.Uint64("exponent", opts.Exponent),
		zap.Stringer("modulus", base.Modulus()),
		zap.Duration("elapsed", res.Elapsed),
	)

	out := cmd.OutOrStdout()
	if opts.Grid {
		fmt.Fprint(out, base)
		fmt.Fprintf(out, "^%d =\n", opts.Exponent)
		fmt.Fprint(out, res.Matrix)
	}
	fmt.Fprintln(out, codec.MustFormat(res.Matrix))

	return nil
}
