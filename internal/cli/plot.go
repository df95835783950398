// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/matpow/internal/report"
)

// PlotOptions holds flags for the plot command.
type PlotOptions struct {
	In  string // short report; empty = configured path
	Out string
}

// NewPlotCommand creates the plot command.
func NewPlotCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PlotOptions{}

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render timing charts from a short report",
		Long: `Read the short report written by generate and render an HTML page with
the mean computation time per matrix size and per exponent.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlot(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.In, "in", "i", "", "short report (default: configured short_path)")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "timings.html", "HTML output path")

	return cmd
}

func runPlot(rootOpts *RootOptions, opts *PlotOptions, cmd *cobra.Command) error {
	in := opts.In
	if in == "" {
		in = rootOpts.Config().Generate.ShortPath
	}

	f, err := os.Open(in)
	if err != nil {
		return WrapExitError(ExitFailure, "open short report", err)
	}
	defer f.Close()

	rows, err := report.ReadShort(f)
	if err != nil {
		return WrapExitError(ExitFailure, in, err)
	}

	out, err := os.Create(opts.Out)
	if err != nil {
		return WrapExitError(ExitFailure, "create plot", err)
	}
	defer out.Close()

	if err := report.Plot(out, rows); err != nil {
		return WrapExitError(ExitFailure, "plot", err)
	}

	rootOpts.Logger().Info("plot written", zap.String("in", in), zap.String("out", opts.Out), zap.Int("rows", len(rows)))
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d rows)\n", opts.Out, len(rows))

	return nil
}
