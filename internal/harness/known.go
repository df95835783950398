// SPDX-License-Identifier: MIT

package harness

import (
	"fmt"
	"io"

	"github.com/katalvlaran/matpow/codec"
	"github.com/katalvlaran/matpow/matrix"
	"github.com/katalvlaran/matpow/numeric"
)

// Scenario is a power case with a known answer.
type Scenario struct {
	Name     string
	Input    string // codec text
	Exponent uint64
	Field    uint64 // 0 = unbounded
	Want     string // codec text of the expected power
}

// KnownScenarios returns the fixed known-data cases, all over Z/100.
func KnownScenarios() []Scenario {
	return []Scenario{
		{Name: "2x2 matrix to the power 2", Input: "(1,2;3,4)", Exponent: 2, Field: 100, Want: "(7,10;15,22)"},
		{Name: "2x2 matrix to the power 10", Input: "(1,1;1,0)", Exponent: 10, Field: 100, Want: "(89,55;55,34)"},
		{Name: "identity matrix to the power 5", Input: "(1,0;0,1)", Exponent: 5, Field: 100, Want: "(1,0;0,1)"},
	}
}

// Run parses the input, raises it to the exponent and returns the result in
// codec form. Timing is not reported so that the output stays deterministic.
func (s Scenario) Run(opts ...matrix.Option) (base, got *matrix.Dense, err error) {
	base, err = codec.Parse(s.Input, numeric.FromFieldSize(s.Field))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", s.Name, err)
	}
	res, err := Execute(Request{Op: OpPower, Operands: []*matrix.Dense{base}, Exponent: s.Exponent, Options: opts})
	if err != nil {
		return base, nil, fmt.Errorf("%s: %w", s.Name, err)
	}

	return base, res.Matrix, nil
}

// RunKnown replays KnownScenarios and writes a report to w. A scenario whose
// result differs from Want is reported as a mismatch; the first mismatch or
// failure is returned after all scenarios ran.
func RunKnown(w io.Writer, opts ...matrix.Option) error {
	var first error
	for i, s := range KnownScenarios() {
		fmt.Fprintf(w, "Test %d: %s (%s)\n", i+1, s.Name, numeric.FromFieldSize(s.Field))
		base, got, err := s.Run(opts...)
		if err != nil {
			fmt.Fprintf(w, "error: %v\n\n", err)
			if first == nil {
				first = err
			}
			continue
		}

		text := codec.MustFormat(got)
		fmt.Fprint(w, base)
		fmt.Fprintf(w, "^%d =\n", s.Exponent)
		fmt.Fprint(w, got)
		fmt.Fprintf(w, "result: %s", text)
		if text != s.Want {
			fmt.Fprintf(w, " (MISMATCH, want %s)", s.Want)
			if first == nil {
				first = fmt.Errorf("%s: got %s, want %s", s.Name, text, s.Want)
			}
		}
		fmt.Fprint(w, "\n\n")
	}

	return first
}
