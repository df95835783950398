// SPDX-License-Identifier: MIT

package harness

import (
	"context"
	"encoding/binary"
	"encoding/csv"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/matpow/codec"
	"github.com/katalvlaran/matpow/matrix"
	"github.com/katalvlaran/matpow/numeric"
)

// Report headers.
var (
	CSVHeader   = []string{"matrix_size", "exponent", "field_size", "matrix_data", "result_data", "computation_time_ns"}
	ShortHeader = "matrix_size exponent field_size computation_time_ns"
)

// serializeError replaces matrix text that could not be formatted.
const serializeError = "SERIALIZE_ERROR"

// GenerateConfig bounds a generator run. Sizes and exponents are drawn
// uniformly from the inclusive ranges; equal bounds fix the value.
type GenerateConfig struct {
	MinSize, MaxSize int
	Tests            int
	MinExp, MaxExp   uint64
	FieldSize        uint64 // 0 = unbounded
	Seed             uint64 // 0 = derived from the run id
}

// Validate checks the bounds, wrapping ErrInvalidParams.
func (c GenerateConfig) Validate() error {
	switch {
	case c.MinSize <= 0 || c.MaxSize <= 0 || c.MinSize > c.MaxSize:
		return fmt.Errorf("sizes [%d, %d]: %w", c.MinSize, c.MaxSize, ErrInvalidParams)
	case c.Tests <= 0:
		return fmt.Errorf("tests %d: %w", c.Tests, ErrInvalidParams)
	case c.MinExp > c.MaxExp:
		return fmt.Errorf("exponents [%d, %d]: %w", c.MinExp, c.MaxExp, ErrInvalidParams)
	}

	return nil
}

// Summary describes a finished generator run.
type Summary struct {
	RunID         string
	Seed          uint64
	Cases         int // rows written to both reports
	PowerFailures int // rows whose result_data holds an error message
	Skipped       int // cases whose input matrix could not be built
	Total         time.Duration
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithLogger sets the structured logger; the default is a no-op logger.
func WithLogger(l *zap.Logger) GeneratorOption {
	return func(g *Generator) {
		if l != nil {
			g.log = l
		}
	}
}

// WithDescriber sets how failed powers are rendered into result_data.
// The default is err.Error().
func WithDescriber(fn func(error) string) GeneratorOption {
	return func(g *Generator) {
		if fn != nil {
			g.describe = fn
		}
	}
}

// WithEcho mirrors every short-report row to w, e.g. a terminal.
func WithEcho(w io.Writer) GeneratorOption {
	return func(g *Generator) { g.echo = w }
}

// WithPowerOptions forwards options (such as a step hook) to every Power call.
func WithPowerOptions(opts ...matrix.Option) GeneratorOption {
	return func(g *Generator) { g.powerOpts = append(g.powerOpts, opts...) }
}

// Generator runs randomized power cases and writes the CSV and short reports.
// A Generator is not safe for concurrent use.
type Generator struct {
	cfg       GenerateConfig
	mod       numeric.Modulus
	log       *zap.Logger
	describe  func(error) string
	echo      io.Writer
	powerOpts []matrix.Option

	// per-run state
	rng     *rand.Rand
	summary Summary
}

// NewGenerator validates cfg and returns a ready Generator.
func NewGenerator(cfg GenerateConfig, opts ...GeneratorOption) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Generator{
		cfg:      cfg,
		mod:      numeric.FromFieldSize(cfg.FieldSize),
		log:      zap.NewNop(),
		describe: func(err error) string { return err.Error() },
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Run executes cfg.Tests cases, writing one row per case to csvOut and
// shortOut. It stops early when ctx is cancelled. A run that writes no row
// returns ErrNoCases together with its summary.
func (g *Generator) Run(ctx context.Context, csvOut, shortOut io.Writer) (Summary, error) {
	id := uuid.New()
	seed := g.cfg.Seed
	if seed == 0 {
		seed = binary.LittleEndian.Uint64(id[:8])
	}
	g.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	g.summary = Summary{RunID: id.String(), Seed: seed}

	log := g.log.With(zap.String("run_id", g.summary.RunID))
	log.Info("generation started",
		zap.Int("tests", g.cfg.Tests),
		zap.Int("min_size", g.cfg.MinSize),
		zap.Int("max_size", g.cfg.MaxSize),
		zap.Uint64("min_exp", g.cfg.MinExp),
		zap.Uint64("max_exp", g.cfg.MaxExp),
		zap.Stringer("modulus", g.mod),
		zap.Uint64("seed", seed),
	)

	cw := csv.NewWriter(csvOut)
	if err := cw.Write(CSVHeader); err != nil {
		return g.summary, fmt.Errorf("write csv header: %w", err)
	}
	if _, err := fmt.Fprintln(shortOut, ShortHeader); err != nil {
		return g.summary, fmt.Errorf("write short header: %w", err)
	}

	for i := 0; i < g.cfg.Tests; i++ {
		if err := ctx.Err(); err != nil {
			cw.Flush()
			return g.summary, err
		}
		if err := g.runCase(log, i, cw, shortOut); err != nil {
			cw.Flush()
			return g.summary, err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return g.summary, fmt.Errorf("write csv: %w", err)
	}

	log.Info("generation finished",
		zap.Int("cases", g.summary.Cases),
		zap.Int("power_failures", g.summary.PowerFailures),
		zap.Int("skipped", g.summary.Skipped),
		zap.Duration("total", g.summary.Total),
	)
	if g.summary.Cases == 0 {
		return g.summary, ErrNoCases
	}

	return g.summary, nil
}

// runCase draws, runs and records one case. Only write failures are returned.
func (g *Generator) runCase(log *zap.Logger, idx int, cw *csv.Writer, shortOut io.Writer) error {
	size := g.cfg.MinSize + g.rng.IntN(g.cfg.MaxSize-g.cfg.MinSize+1)
	exp := g.cfg.MinExp
	if g.cfg.MaxExp != g.cfg.MinExp {
		exp += g.rng.Uint64N(g.cfg.MaxExp - g.cfg.MinExp + 1)
	}

	base, err := RandomMatrix(g.rng, size, g.mod)
	if err != nil {
		g.summary.Skipped++
		log.Warn("case skipped", zap.Int("case", idx), zap.Int("size", size), zap.Error(err))
		return nil
	}
	defer base.Release()

	input, err := codec.Format(base)
	if err != nil {
		input = serializeError
	}

	res, err := Execute(Request{Op: OpPower, Operands: []*matrix.Dense{base}, Exponent: exp, Options: g.powerOpts})
	var output string
	if err != nil {
		g.summary.PowerFailures++
		output = g.describe(err)
		log.Debug("power failed", zap.Int("case", idx), zap.Error(err))
	} else {
		if output, err = codec.Format(res.Matrix); err != nil {
			output = serializeError
		}
		res.Matrix.Release()
	}

	g.summary.Cases++
	g.summary.Total += res.Elapsed
	ns := strconv.FormatInt(res.Elapsed.Nanoseconds(), 10)
	field := strconv.FormatUint(g.cfg.FieldSize, 10)
	line := fmt.Sprintf("%d %d %s %s", size, exp, field, ns)

	log.Debug("case done",
		zap.Int("case", idx),
		zap.Int("size", size),
		zap.Uint64("exponent", exp),
		zap.Duration("elapsed", res.Elapsed),
	)
	if g.echo != nil {
		if _, err := fmt.Fprintln(g.echo, line); err != nil {
			return fmt.Errorf("write echo: %w", err)
		}
	}
	if _, err := fmt.Fprintln(shortOut, line); err != nil {
		return fmt.Errorf("write short report: %w", err)
	}
	if err := cw.Write([]string{strconv.Itoa(size), strconv.FormatUint(exp, 10), field, input, output, ns}); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	return nil
}
