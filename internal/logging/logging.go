// SPDX-License-Identifier: MIT

// Package logging builds the zap loggers used by the harness and the CLI.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/matpow/matrix"
)

// New returns a production logger writing JSON to stderr; verbose lowers the
// level to debug.
func New(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return logger, nil
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}

	return l
}

// StepHook returns a matrix.Option that logs every Power product at debug level.
// It returns nil when debug is disabled so that Power skips observation.
func StepHook(l *zap.Logger) matrix.Option {
	if l == nil || !l.Core().Enabled(zapcore.DebugLevel) {
		return nil
	}

	return matrix.WithStepHook(func(s matrix.Step) {
		l.Debug("power step",
			zap.Int("index", s.Index),
			zap.Uint("bit", s.Bit),
			zap.Stringer("kind", s.Kind),
		)
	})
}
