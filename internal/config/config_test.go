// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, ModeFixedExponent, cfg.Generate.Mode)
	require.Equal(t, "matrix_power_tests.csv", cfg.Generate.CSVPath)
	require.Equal(t, "output-short.txt", cfg.Generate.ShortPath)
	require.Equal(t, "en", cfg.Log.Lang)
	require.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	t.Setenv(EnvLang, "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	t.Setenv(EnvLang, "")
	path := filepath.Join(t.TempDir(), "matpow.yaml")
	data := []byte(`generate:
  mode: size
  tests: 3
  size: 8
  min_exp: 5
  max_exp: 9
  field_size: 0
  seed: 42
log:
  verbose: true
  lang: ru
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	g := cfg.Generate
	require.Equal(t, ModeFixedSize, g.Mode)
	require.Equal(t, 3, g.Tests)
	require.Zero(t, g.FieldSize)
	require.Equal(t, uint64(42), g.Seed)
	require.Equal(t, "output-short.txt", g.ShortPath) // untouched keys keep defaults
	require.True(t, cfg.Log.Verbose)
	require.Equal(t, "ru", cfg.Log.Lang)

	minSize, maxSize, minExp, maxExp := g.Bounds()
	require.Equal(t, 8, minSize)
	require.Equal(t, 8, maxSize)
	require.Equal(t, uint64(5), minExp)
	require.Equal(t, uint64(9), maxExp)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("generate: [1, 2"), 0o644))

	_, err := Load(path)
	require.ErrorContains(t, err, "failed to parse config")
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv(EnvLang, "ru")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, "ru", cfg.Log.Lang)
}

func TestBounds_FixedExponent(t *testing.T) {
	g := DefaultConfig().Generate
	minSize, maxSize, minExp, maxExp := g.Bounds()
	require.Equal(t, 2, minSize)
	require.Equal(t, 32, maxSize)
	require.Equal(t, uint64(10), minExp)
	require.Equal(t, uint64(10), maxExp)
}

func TestValidate_Violations(t *testing.T) {
	cases := map[string]func(c *Config){
		"mode":           func(c *Config) { c.Generate.Mode = "both" },
		"tests zero":     func(c *Config) { c.Generate.Tests = 0 },
		"tests high":     func(c *Config) { c.Generate.Tests = MaxTests + 1 },
		"exponent zero":  func(c *Config) { c.Generate.Exponent = 0 },
		"exponent high":  func(c *Config) { c.Generate.Exponent = MaxExponent + 1 },
		"min size zero":  func(c *Config) { c.Generate.MinSize = 0 },
		"max below min":  func(c *Config) { c.Generate.MaxSize = 1 },
		"max size high":  func(c *Config) { c.Generate.MaxSize = MaxSize + 1 },
		"field high":     func(c *Config) { c.Generate.FieldSize = MaxFieldSize + 1 },
		"csv path":       func(c *Config) { c.Generate.CSVPath = "" },
		"short path":     func(c *Config) { c.Generate.ShortPath = "" },
		"lang":           func(c *Config) { c.Log.Lang = "not a tag!" },
		"size mode exps": func(c *Config) { c.Generate.Mode = ModeFixedSize; c.Generate.MaxExp = 0 },
		"size mode size": func(c *Config) { c.Generate.Mode = ModeFixedSize; c.Generate.Size = MaxSize + 1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestValidate_BlocksAreIndependent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Generate.Tests = 0
	require.NoError(t, cfg.Log.Validate())
	require.ErrorIs(t, cfg.Generate.Validate(), ErrInvalidConfig)
	require.ErrorContains(t, cfg.Validate(), "generate: tests 0")

	cfg = DefaultConfig()
	cfg.Log.Lang = "not a tag!"
	require.NoError(t, cfg.Generate.Validate())
	require.ErrorIs(t, cfg.Log.Validate(), ErrInvalidConfig)
}

func TestValidate_FieldSizeZeroIsUnbounded(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Generate.FieldSize = 0
	require.NoError(t, cfg.Validate())
}
