// SPDX-License-Identifier: MIT

// Package config loads the matpow YAML configuration: generator bounds,
// report paths and logging preferences.
package config

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvLang overrides Log.Lang when set.
const EnvLang = "MATPOW_LANG"

// Generation modes.
const (
	ModeFixedExponent = "exp"  // fixed exponent, random size in [MinSize, MaxSize]
	ModeFixedSize     = "size" // fixed size, random exponent in [MinExp, MaxExp]
)

// Bounds accepted by Validate.
const (
	MaxTests     = 10000
	MaxSize      = 10000
	MaxExponent  = 1000
	MaxFieldSize = 100000
)

// Config holds all matpow configuration.
type Config struct {
	Generate GenerateConfig `yaml:"generate"`
	Log      LogConfig      `yaml:"log"`
}

// GenerateConfig configures the random test generator.
type GenerateConfig struct {
	Mode      string `yaml:"mode"`       // exp, size
	Tests     int    `yaml:"tests"`      // number of cases
	Exponent  uint64 `yaml:"exponent"`   // fixed exponent (mode exp)
	MinSize   int    `yaml:"min_size"`   // mode exp
	MaxSize   int    `yaml:"max_size"`   // mode exp
	Size      int    `yaml:"size"`       // fixed size (mode size)
	MinExp    uint64 `yaml:"min_exp"`    // mode size
	MaxExp    uint64 `yaml:"max_exp"`    // mode size
	FieldSize uint64 `yaml:"field_size"` // 0 = unbounded
	Seed      uint64 `yaml:"seed"`       // 0 = derived from the run id
	CSVPath   string `yaml:"csv_path"`
	ShortPath string `yaml:"short_path"`
}

// LogConfig configures logging and message language.
type LogConfig struct {
	Verbose bool   `yaml:"verbose"`
	Lang    string `yaml:"lang"` // BCP 47, e.g. en, ru
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Generate: GenerateConfig{
			Mode:      ModeFixedExponent,
			Tests:     10,
			Exponent:  10,
			MinSize:   2,
			MaxSize:   32,
			Size:      16,
			MinExp:    1,
			MaxExp:    100,
			FieldSize: 1000,
			CSVPath:   "matrix_power_tests.csv",
			ShortPath: "output-short.txt",
		},
		Log: LogConfig{Lang: "en"},
	}
}

// Load loads configuration from a YAML file. A missing file yields defaults.
// Environment overrides apply in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if lang := os.Getenv(EnvLang); lang != "" {
		c.Log.Lang = lang
	}
}

// Bounds resolves the mode into inclusive size and exponent ranges.
func (g GenerateConfig) Bounds() (minSize, maxSize int, minExp, maxExp uint64) {
	if g.Mode == ModeFixedSize {
		return g.Size, g.Size, g.MinExp, g.MaxExp
	}

	return g.MinSize, g.MaxSize, g.Exponent, g.Exponent
}

// Validate reports the first violation, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	if err := c.Generate.Validate(); err != nil {
		return err
	}

	return c.Log.Validate()
}

// Validate checks the generation block only.
func (g GenerateConfig) Validate() error {
	if err := g.validate(); err != nil {
		return fmt.Errorf("%w: generate: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Validate checks the language tag.
func (l LogConfig) Validate() error {
	if _, err := language.Parse(l.Lang); err != nil {
		return fmt.Errorf("%w: log.lang %q: %w", ErrInvalidConfig, l.Lang, err)
	}

	return nil
}

func (g GenerateConfig) validate() error {
	if g.Mode != ModeFixedExponent && g.Mode != ModeFixedSize {
		return fmt.Errorf("mode %q (valid: %s, %s)", g.Mode, ModeFixedExponent, ModeFixedSize)
	}
	if g.Tests < 1 || g.Tests > MaxTests {
		return fmt.Errorf("tests %d not in [1, %d]", g.Tests, MaxTests)
	}

	minSize, maxSize, minExp, maxExp := g.Bounds()
	if minSize < 1 || minSize > MaxSize {
		return fmt.Errorf("size %d not in [1, %d]", minSize, MaxSize)
	}
	if maxSize < minSize || maxSize > MaxSize {
		return fmt.Errorf("max size %d not in [%d, %d]", maxSize, minSize, MaxSize)
	}
	if minExp < 1 || minExp > MaxExponent {
		return fmt.Errorf("exponent %d not in [1, %d]", minExp, MaxExponent)
	}
	if maxExp < minExp || maxExp > MaxExponent {
		return fmt.Errorf("max exponent %d not in [%d, %d]", maxExp, minExp, MaxExponent)
	}
	if g.FieldSize > MaxFieldSize {
		return fmt.Errorf("field size %d not in [0, %d]", g.FieldSize, MaxFieldSize)
	}
	if g.CSVPath == "" || g.ShortPath == "" {
		return errors.New("output paths must not be empty")
	}

	return nil
}
