// SPDX-License-Identifier: MIT

package harness_test

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matpow/codec"
	"github.com/katalvlaran/matpow/internal/harness"
)

func TestKnownScenarios_Answers(t *testing.T) {
	scenarios := harness.KnownScenarios()
	require.Len(t, scenarios, 3)
	for _, s := range scenarios {
		_, got, err := s.Run()
		require.NoError(t, err, s.Name)
		require.Equal(t, s.Want, codec.MustFormat(got), s.Name)
	}
}

func TestScenario_RunParseError(t *testing.T) {
	s := harness.Scenario{Name: "broken", Input: "(1,2", Exponent: 2, Field: 100}
	_, _, err := s.Run()
	require.ErrorIs(t, err, codec.ErrInvalidFormat)
	require.ErrorContains(t, err, "broken")
}

func TestRunKnown_Golden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, harness.RunKnown(&buf))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "known", buf.Bytes())
}
