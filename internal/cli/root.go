// SPDX-License-Identifier: MIT

// Package cli implements the matpow command line: power, op, known,
// generate and plot.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/katalvlaran/matpow/internal/config"
	"github.com/katalvlaran/matpow/internal/logging"
	"github.com/katalvlaran/matpow/internal/messages"
)

// DefaultConfigPath is read when --config is not given; a missing file is fine.
const DefaultConfigPath = "matpow.yaml"

// RootOptions holds global flags and the state prepared for subcommands.
type RootOptions struct {
	ConfigPath string
	Verbose    bool
	Lang       string

	cfg  *config.Config
	log  *zap.Logger
	lang language.Tag
}

// Logger returns the command logger, a no-op one before initialization.
func (o *RootOptions) Logger() *zap.Logger { return logging.OrNop(o.log) }

// Language returns the resolved message language.
func (o *RootOptions) Language() language.Tag { return messages.Match(o.lang) }

// Config returns the loaded configuration, or defaults before initialization.
func (o *RootOptions) Config() *config.Config {
	if o.cfg == nil {
		return config.DefaultConfig()
	}
	return o.cfg
}

// NewRootCommand creates the root command for the matpow CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matpow",
		Short: "matpow - modular matrix exponentiation",
		Long: `matpow raises square matrices to non-negative integer powers over Z/mZ
(or over unbounded 64-bit integers with overflow detection) by binary
exponentiation, and benchmarks the computation on random matrices.

Matrices are written as "(a11,a12;a21,a22)".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.log != nil {
				_ = opts.log.Sync()
			}
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", DefaultConfigPath, "YAML configuration file")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")
	cmd.PersistentFlags().StringVar(&opts.Lang, "lang", "", "message language (en|ru); overrides config and "+config.EnvLang)

	// Add subcommands
	cmd.AddCommand(NewPowerCommand(opts))
	cmd.AddCommand(NewOpCommand(opts))
	cmd.AddCommand(NewKnownCommand(opts))
	cmd.AddCommand(NewGenerateCommand(opts))
	cmd.AddCommand(NewPlotCommand(opts))

	return cmd
}

// init loads the configuration, applies flag overrides and builds the logger.
func (o *RootOptions) init(cmd *cobra.Command) error {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return WrapExitError(ExitFailure, "load config", err)
	}
	flags := cmd.Flags()
	if flags.Changed("verbose") {
		cfg.Log.Verbose = o.Verbose
	}
	if flags.Changed("lang") {
		cfg.Log.Lang = o.Lang
	}
	o.lang = messages.Parse(cfg.Log.Lang)
	// generate validates its own block after applying flags
	if err := cfg.Log.Validate(); err != nil {
		return WrapExitError(ExitFailure, o.ConfigPath, err)
	}
	o.cfg = cfg

	if o.log, err = logging.New(cfg.Log.Verbose); err != nil {
		return WrapExitError(ExitFailure, "init logger", err)
	}

	return nil
}

// Main runs the CLI with args and returns the process exit code. Errors are
// printed to stderr, prefixed with their localized description when known.
func Main(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts := &RootOptions{}
	cmd := newRootCommand(opts)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		if messages.Known(err) {
			fmt.Fprintf(stderr, "%s: %v\n", messages.Text(err, opts.Language()), err)
		} else {
			fmt.Fprintf(stderr, "matpow: %v\n", err)
		}
		return GetExitCode(err)
	}

	return ExitSuccess
}
