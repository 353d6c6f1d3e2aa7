// SPDX-License-Identifier: MIT

package riemann

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvlset/sampler"
)

var (
	// ErrInvalidPartitions indicates a partition count below 1.
	ErrInvalidPartitions = errors.New("riemann: partitions must be >= 1")

	// ErrUnknownRule indicates a Rule value or name outside Left/Right/Midpoint.
	ErrUnknownRule = errors.New("riemann: unknown sample rule")
)

// Rule selects where each sub-interval is sampled.
type Rule int

const (
	// Left samples the left edge of each sub-interval.
	Left Rule = iota
	// Right samples the right edge of each sub-interval.
	Right
	// Midpoint samples the center of each sub-interval.
	Midpoint
)

// String returns "left", "right" or "midpoint".
func (r Rule) String() string {
	switch r {
	case Left:
		return "left"
	case Right:
		return "right"
	case Midpoint:
		return "midpoint"
	}

	return fmt.Sprintf("Rule(%d)", int(r))
}

// ParseRule maps a case-insensitive rule name to a Rule.
func ParseRule(s string) (Rule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	case "midpoint", "mid", "m":
		return Midpoint, nil
	}

	return Left, fmt.Errorf("%w: %q", ErrUnknownRule, s)
}

// MarshalText encodes the rule by name.
func (r Rule) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// UnmarshalText decodes a rule name via ParseRule.
func (r *Rule) UnmarshalText(b []byte) error {
	v, err := ParseRule(string(b))
	if err != nil {
		return err
	}
	*r = v

	return nil
}

// samplePoint returns the rule's x for sub-interval i of g.
func (r Rule) samplePoint(g sampler.Grid, i int) float64 {
	switch r {
	case Right:
		return g.RightEdge(i)
	case Midpoint:
		return g.Midpoint(i)
	default:
		return g.LeftEdge(i)
	}
}

// Rectangle is one Riemann bar: [X, X+Width] × [min(0,Height), max(0,Height)].
type Rectangle struct {
	X      float64 `json:"x" yaml:"x"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Bottom returns min(0, Height).
func (r Rectangle) Bottom() float64 { return math.Min(0, r.Height) }

// Top returns max(0, Height).
func (r Rectangle) Top() float64 { return math.Max(0, r.Height) }

// Area returns the signed area Width·Height.
func (r Rectangle) Area() float64 { return r.Width * r.Height }

// Result is the outcome of one Sum call.
//   - Rectangles is nil when rectangles were suppressed.
//   - Failures lists skipped samples (only under WithSkipFailures).
type Result struct {
	Rule       Rule                 `json:"rule" yaml:"rule"`
	Partitions int                  `json:"partitions" yaml:"partitions"`
	Dx         float64              `json:"dx" yaml:"dx"`
	Sum        float64              `json:"sum" yaml:"sum"`
	Rectangles []Rectangle          `json:"rectangles,omitempty" yaml:"rectangles,omitempty"`
	Failures   []*sampler.EvalError `json:"-" yaml:"-"`
}
