// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/matpow/internal/config"
	"github.com/katalvlaran/matpow/internal/harness"
	"github.com/katalvlaran/matpow/internal/logging"
	"github.com/katalvlaran/matpow/internal/messages"
)

// NewGenerateCommand creates the generate command. Its flags default to the
// configuration file values and override them only when given.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	var g config.GenerateConfig
	d := config.DefaultConfig().Generate

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Benchmark powers of random matrices",
		Long: `Generate random square matrices, raise them to powers and record the timings.

Modes:
  exp   fixed exponent (--exp), random size in [--min-size, --max-size]
  size  fixed size (--size), random exponent in [--min-exp, --max-exp]

Writes a CSV report (matrix_size,exponent,field_size,matrix_data,result_data,
computation_time_ns) and a short report (matrix_size exponent field_size
computation_time_ns) and echoes every short row to stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := rootOpts.Config().Generate
			overrideGenerate(cmd.Flags(), &cfg, g)
			return runGenerate(rootOpts, cfg, cmd)
		},
	}

	f := cmd.Flags()
	f.StringVar(&g.Mode, "mode", d.Mode, "generation mode (exp|size)")
	f.IntVarP(&g.Tests, "tests", "n", d.Tests, "number of cases [1-10000]")
	f.Uint64Var(&g.Exponent, "exp", d.Exponent, "fixed exponent, mode exp [1-1000]")
	f.IntVar(&g.MinSize, "min-size", d.MinSize, "minimum size, mode exp [1-10000]")
	f.IntVar(&g.MaxSize, "max-size", d.MaxSize, "maximum size, mode exp [min-size-10000]")
	f.IntVar(&g.Size, "size", d.Size, "fixed size, mode size [1-10000]")
	f.Uint64Var(&g.MinExp, "min-exp", d.MinExp, "minimum exponent, mode size [1-1000]")
	f.Uint64Var(&g.MaxExp, "max-exp", d.MaxExp, "maximum exponent, mode size [min-exp-1000]")
	f.Uint64VarP(&g.FieldSize, "field", "f", d.FieldSize, "field size [0-100000] (0 = unbounded)")
	f.Uint64Var(&g.Seed, "seed", d.Seed, "random seed (0 = random)")
	f.StringVar(&g.CSVPath, "csv", d.CSVPath, "CSV report path")
	f.StringVar(&g.ShortPath, "short", d.ShortPath, "short report path")

	return cmd
}

// overrideGenerate copies every explicitly set flag from flagged into cfg.
func overrideGenerate(flags *pflag.FlagSet, cfg *config.GenerateConfig, flagged config.GenerateConfig) {
	set := map[string]func(){
		"mode":     func() { cfg.Mode = flagged.Mode },
		"tests":    func() { cfg.Tests = flagged.Tests },
		"exp":      func() { cfg.Exponent = flagged.Exponent },
		"min-size": func() { cfg.MinSize = flagged.MinSize },
		"max-size": func() { cfg.MaxSize = flagged.MaxSize },
		"size":     func() { cfg.Size = flagged.Size },
		"min-exp":  func() { cfg.MinExp = flagged.MinExp },
		"max-exp":  func() { cfg.MaxExp = flagged.MaxExp },
		"field":    func() { cfg.FieldSize = flagged.FieldSize },
		"seed":     func() { cfg.Seed = flagged.Seed },
		"csv":      func() { cfg.CSVPath = flagged.CSVPath },
		"short":    func() { cfg.ShortPath = flagged.ShortPath },
	}
	flags.Visit(func(fl *pflag.Flag) {
		if apply, ok := set[fl.Name]; ok {
			apply()
		}
	})
}

func runGenerate(rootOpts *RootOptions, cfg config.GenerateConfig, cmd *cobra.Command) error {
	if err := cfg.Validate(); err != nil {
		return WrapExitError(ExitFailure, "generate", err)
	}

	minSize, maxSize, minExp, maxExp := cfg.Bounds()
	log := rootOpts.Logger()
	gen, err := harness.NewGenerator(harness.GenerateConfig{
		MinSize:   minSize,
		MaxSize:   maxSize,
		Tests:     cfg.Tests,
		MinExp:    minExp,
		MaxExp:    maxExp,
		FieldSize: cfg.FieldSize,
		Seed:      cfg.Seed,
	},
		harness.WithLogger(log),
		harness.WithDescriber(messages.Describer(rootOpts.Language())),
		harness.WithEcho(cmd.OutOrStdout()),
		harness.WithPowerOptions(logging.StepHook(log)),
	)
	if err != nil {
		return WrapExitError(ExitFailure, "generate", err)
	}

	csvFile, err := os.Create(cfg.CSVPath)
	if err != nil {
		return WrapExitError(ExitFailure, "create csv report", err)
	}
	defer csvFile.Close()
	shortFile, err := os.Create(cfg.ShortPath)
	if err != nil {
		return WrapExitError(ExitFailure, "create short report", err)
	}
	defer shortFile.Close()

	sum, err := gen.Run(cmd.Context(), csvFile, shortFile)
	if err != nil {
		return WrapExitError(ExitFailure, "generate", err)
	}
	if err := csvFile.Sync(); err != nil {
		return WrapExitError(ExitFailure, "write csv report", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated and ran %d tests (output: %s and %s)\n",
		sum.Cases, cfg.CSVPath, cfg.ShortPath)

	return nil
}
