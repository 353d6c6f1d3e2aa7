// SPDX-License-Identifier: MIT

// Package config loads engine defaults for the lvlset CLI from YAML.
//
// Values are read into a loosely typed map and coerced with spf13/cast, so
// `samples: "400"`, `samples: 400` and `samples: 400.0` are all accepted.
// Missing keys keep the engine defaults returned by Default.
//
// Example file:
//
//	samples: 400
//	partitions: 50
//	levels: 8
//	curve_steps: 100
//	rule: midpoint
//	resolution: standard
//	tolerance: 1e-9
//	cache_ttl: 10m
//	log_level: info
//	output: yaml
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"
	"time"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlset/lebesgue"
	"github.com/katalvlaran/lvlset/levelset"
	"github.com/katalvlaran/lvlset/memo"
	"github.com/katalvlaran/lvlset/riemann"
	"github.com/katalvlaran/lvlset/sampler"
)

// ErrInvalidConfig indicates a value that fails coercion or range checks.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the effective CLI defaults.
type Config struct {
	Samples    int
	Partitions int
	Levels     int
	CurveSteps int
	Rule       riemann.Rule
	Resolution sampler.Resolution
	Tolerance  float64
	CacheTTL   time.Duration
	LogLevel   slog.Level
	Output     string
}

// Default returns the engine defaults.
func Default() Config {
	return Config{
		Samples:    levelset.DefaultSamples,
		Partitions: 10,
		Levels:     8,
		CurveSteps: lebesgue.DefaultCurveSteps,
		Rule:       riemann.Left,
		Resolution: sampler.Standard,
		Tolerance:  levelset.DefaultTolerance,
		CacheTTL:   memo.DefaultTTL,
		LogLevel:   slog.LevelInfo,
		Output:     "yaml",
	}
}

// Load reads path and overlays it on Default. An empty path returns Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML bytes and overlays them on Default.
func Parse(data []byte) (Config, error) {
	raw := map[string]any{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return FromMap(raw)
}

// FromMap overlays a loosely typed map (keys as in the package example) on Default.
func FromMap(raw map[string]any) (Config, error) {
	c := Default()
	var err error

	ints := map[string]*int{
		"samples":     &c.Samples,
		"partitions":  &c.Partitions,
		"levels":      &c.Levels,
		"curve_steps": &c.CurveSteps,
	}
	for key, dst := range ints {
		if v, ok := raw[key]; ok {
			if *dst, err = cast.ToIntE(v); err != nil {
				return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, key, err)
			}
		}
	}

	if v, ok := raw["rule"]; ok {
		if c.Rule, err = riemann.ParseRule(cast.ToString(v)); err != nil {
			return Config{}, fmt.Errorf("%w: rule: %w", ErrInvalidConfig, err)
		}
	}
	if v, ok := raw["resolution"]; ok {
		if c.Resolution, err = sampler.ParseResolution(cast.ToString(v)); err != nil {
			return Config{}, fmt.Errorf("%w: resolution: %w", ErrInvalidConfig, err)
		}
	}
	if v, ok := raw["tolerance"]; ok {
		if c.Tolerance, err = cast.ToFloat64E(v); err != nil {
			return Config{}, fmt.Errorf("%w: tolerance: %w", ErrInvalidConfig, err)
		}
	}
	if v, ok := raw["cache_ttl"]; ok {
		if c.CacheTTL, err = cast.ToDurationE(v); err != nil {
			return Config{}, fmt.Errorf("%w: cache_ttl: %w", ErrInvalidConfig, err)
		}
	}
	if v, ok := raw["log_level"]; ok {
		if err = c.LogLevel.UnmarshalText([]byte(cast.ToString(v))); err != nil {
			return Config{}, fmt.Errorf("%w: log_level: %w", ErrInvalidConfig, err)
		}
	}
	if v, ok := raw["output"]; ok {
		c.Output = strings.ToLower(cast.ToString(v))
	}

	return c, c.Validate()
}

// Validate checks every count is positive, the tolerance is finite and
// non-negative, and the output format is known.
func (c Config) Validate() error {
	for name, v := range map[string]int{
		"samples": c.Samples, "partitions": c.Partitions, "levels": c.Levels, "curve_steps": c.CurveSteps,
	} {
		if v < 1 {
			return fmt.Errorf("%w: %s must be >= 1 (got %d)", ErrInvalidConfig, name, v)
		}
	}
	if math.IsNaN(c.Tolerance) || math.IsInf(c.Tolerance, 0) || c.Tolerance < 0 {
		return fmt.Errorf("%w: tolerance must be finite and >= 0 (got %g)", ErrInvalidConfig, c.Tolerance)
	}
	if c.Output != "yaml" && c.Output != "json" {
		return fmt.Errorf("%w: output must be yaml or json (got %q)", ErrInvalidConfig, c.Output)
	}

	return nil
}
