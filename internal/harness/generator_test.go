// SPDX-License-Identifier: MIT

package harness_test

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/csv"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/matpow/codec"
	"github.com/katalvlaran/matpow/internal/harness"
	"github.com/katalvlaran/matpow/matrix"
	"github.com/katalvlaran/matpow/numeric"
)

func runGenerator(t *testing.T, cfg harness.GenerateConfig, opts ...harness.GeneratorOption) (harness.Summary, [][]string, []string, error) {
	t.Helper()
	g, err := harness.NewGenerator(cfg, opts...)
	require.NoError(t, err)

	var csvBuf, shortBuf bytes.Buffer
	sum, runErr := g.Run(context.Background(), &csvBuf, &shortBuf)

	records, err := csv.NewReader(&csvBuf).ReadAll()
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(shortBuf.String(), "\n"), "\n")

	return sum, records, lines, runErr
}

func TestGenerateConfig_Validate(t *testing.T) {
	ok := harness.GenerateConfig{MinSize: 1, MaxSize: 1, Tests: 1, MinExp: 1, MaxExp: 1}
	require.NoError(t, ok.Validate())

	bad := []harness.GenerateConfig{
		{MinSize: 0, MaxSize: 1, Tests: 1},
		{MinSize: 3, MaxSize: 2, Tests: 1},
		{MinSize: 1, MaxSize: 1, Tests: 0},
		{MinSize: 1, MaxSize: 1, Tests: 1, MinExp: 5, MaxExp: 4},
	}
	for _, c := range bad {
		require.ErrorIs(t, c.Validate(), harness.ErrInvalidParams, "%+v", c)
		_, err := harness.NewGenerator(c)
		require.ErrorIs(t, err, harness.ErrInvalidParams)
	}
}

// Every CSV row is recomputed from its own matrix_data and compared.
func TestGenerator_ReportsAreConsistent(t *testing.T) {
	cfg := harness.GenerateConfig{MinSize: 1, MaxSize: 4, Tests: 6, MinExp: 1, MaxExp: 20, FieldSize: 97, Seed: 7}
	sum, records, lines, err := runGenerator(t, cfg)
	require.NoError(t, err)

	require.Equal(t, 6, sum.Cases)
	require.Zero(t, sum.PowerFailures)
	require.Zero(t, sum.Skipped)
	require.Equal(t, uint64(7), sum.Seed)
	require.NotEmpty(t, sum.RunID)

	require.Equal(t, harness.CSVHeader, records[0])
	require.Len(t, records, 7)
	require.Equal(t, harness.ShortHeader, lines[0])
	require.Len(t, lines, 7)

	mod := numeric.MustModular(97)
	for i, rec := range records[1:] {
		size, err := strconv.Atoi(rec[0])
		require.NoError(t, err)
		require.GreaterOrEqual(t, size, 1)
		require.LessOrEqual(t, size, 4)

		exp, err := strconv.ParseUint(rec[1], 10, 64)
		require.NoError(t, err)
		require.GreaterOrEqual(t, exp, uint64(1))
		require.LessOrEqual(t, exp, uint64(20))
		require.Equal(t, "97", rec[2])

		base, err := codec.Parse(rec[3], mod)
		require.NoError(t, err)
		require.Equal(t, size, base.Rows())
		want, err := matrix.Power(base, exp)
		require.NoError(t, err)
		require.Equal(t, codec.MustFormat(want), rec[4], "row %d", i)

		// short report mirrors the CSV row
		require.Equal(t, strings.Join([]string{rec[0], rec[1], rec[2], rec[5]}, " "), lines[i+1])
	}
}

func TestGenerator_SameSeedSameCases(t *testing.T) {
	cfg := harness.GenerateConfig{MinSize: 2, MaxSize: 3, Tests: 4, MinExp: 2, MaxExp: 9, FieldSize: 1000, Seed: 99}
	_, first, _, err := runGenerator(t, cfg)
	require.NoError(t, err)
	_, second, _, err := runGenerator(t, cfg)
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		require.Equal(t, first[i][:5], second[i][:5]) // timing column differs
	}
}

func TestGenerator_PowerFailuresAreRecorded(t *testing.T) {
	cfg := harness.GenerateConfig{MinSize: 2, MaxSize: 2, Tests: 3, MinExp: 64, MaxExp: 64, FieldSize: 0, Seed: 5}
	sum, records, _, err := runGenerator(t, cfg,
		harness.WithDescriber(func(err error) string { return "overflow: " + strconv.FormatBool(err != nil) }),
	)
	require.NoError(t, err)
	require.Equal(t, 3, sum.Cases)
	require.Equal(t, 3, sum.PowerFailures)
	for _, rec := range records[1:] {
		require.Equal(t, "0", rec[2])
		require.Equal(t, "overflow: true", rec[4])
	}
}

func TestGenerator_NoCases(t *testing.T) {
	cfg := harness.GenerateConfig{MinSize: 20000, MaxSize: 20000, Tests: 2, MinExp: 1, MaxExp: 1, FieldSize: 10, Seed: 1}
	sum, records, lines, err := runGenerator(t, cfg)
	require.ErrorIs(t, err, harness.ErrNoCases)
	require.Equal(t, 2, sum.Skipped)
	require.Zero(t, sum.Cases)
	require.Len(t, records, 1) // header only
	require.Len(t, lines, 1)
}

func TestGenerator_Cancelled(t *testing.T) {
	g, err := harness.NewGenerator(harness.GenerateConfig{MinSize: 1, MaxSize: 1, Tests: 5, MinExp: 1, MaxExp: 1, Seed: 3})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var csvBuf, shortBuf bytes.Buffer
	sum, err := g.Run(ctx, &csvBuf, &shortBuf)
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, sum.Cases)
}

func TestGenerator_EchoAndLogs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	var echo bytes.Buffer
	steps := 0

	cfg := harness.GenerateConfig{MinSize: 2, MaxSize: 2, Tests: 2, MinExp: 3, MaxExp: 3, FieldSize: 11, Seed: 8}
	sum, _, lines, err := runGenerator(t, cfg,
		harness.WithLogger(zap.New(core)),
		harness.WithEcho(&echo),
		harness.WithPowerOptions(matrix.WithStepHook(func(matrix.Step) { steps++ })),
	)
	require.NoError(t, err)

	require.Equal(t, strings.Join(lines[1:], "\n")+"\n", echo.String())
	require.Equal(t, 2*3, steps) // 3 = 0b11: three products per case

	started := logs.FilterMessage("generation started").All()
	require.Len(t, started, 1)
	require.Equal(t, sum.RunID, started[0].ContextMap()["run_id"])
	require.Len(t, logs.FilterMessage("case done").All(), 2)
	require.Len(t, logs.FilterMessage("generation finished").All(), 1)
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestGenerator_WriteFailures(t *testing.T) {
	broken := errors.New("disk full")
	cfg := harness.GenerateConfig{MinSize: 2, MaxSize: 2, Tests: 3, MinExp: 2, MaxExp: 2, FieldSize: 7, Seed: 5}

	g, err := harness.NewGenerator(cfg, harness.WithEcho(failingWriter{broken}))
	require.NoError(t, err)
	var csvBuf, shortBuf bytes.Buffer
	sum, err := g.Run(context.Background(), &csvBuf, &shortBuf)
	require.ErrorIs(t, err, broken)
	require.ErrorContains(t, err, "write echo")
	require.Equal(t, 1, sum.Cases)

	g, err = harness.NewGenerator(cfg)
	require.NoError(t, err)
	_, err = g.Run(context.Background(), &csvBuf, failingWriter{broken})
	require.ErrorIs(t, err, broken)
	require.ErrorContains(t, err, "write short header")
}

func TestGenerator_ZeroSeedDerivesFromRunID(t *testing.T) {
	cfg := harness.GenerateConfig{MinSize: 1, MaxSize: 2, Tests: 2, MinExp: 1, MaxExp: 3, FieldSize: 5}
	sum, _, _, err := runGenerator(t, cfg)
	require.NoError(t, err)

	id, err := uuid.Parse(sum.RunID)
	require.NoError(t, err)
	require.Equal(t, binary.LittleEndian.Uint64(id[:8]), sum.Seed)
}
