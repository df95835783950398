// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Power.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Options never change the numeric result, only what is observed.
package matrix

// StepKind tells which product a Power step computed.
type StepKind uint8

const (
	// StepAccumulate is acc ← acc × run (current exponent bit set).
	StepAccumulate StepKind = iota + 1
	// StepSquare is run ← run × run.
	StepSquare
)

// String returns "accumulate" or "square".
func (k StepKind) String() string {
	switch k {
	case StepAccumulate:
		return "accumulate"
	case StepSquare:
		return "square"
	default:
		return "unknown"
	}
}

// Step describes one completed multiplication inside Power.
type Step struct {
	Index int      // 0-based count of multiplications so far
	Bit   uint     // exponent bit position being processed
	Kind  StepKind // accumulate or square
}

// StepHook observes Power progress. It runs synchronously after each product
// and must not retain or release matrices.
type StepHook func(Step)

const panicNilHook = "matrix: WithStepHook: hook must not be nil"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	onStep StepHook // nil ⇒ no observation
}

// WithStepHook registers h to be called after every multiplication in Power.
// Panics when h is nil (programmer error).
func WithStepHook(h StepHook) Option {
	if h == nil {
		panic(panicNilHook)
	}

	return func(o *Options) { o.onStep = h }
}

// gatherOptions applies user options over the zero defaults; nil entries are skipped.
func gatherOptions(user ...Option) Options {
	var o Options
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
