// SPDX-License-Identifier: MIT

package sampler

import (
	"fmt"
	"math"
	"strings"
)

// Func is the black-box scalar function f: ℝ → ℝ. It must be pure: the engine
// calls it only for evaluation and may call it again at the same x.
type Func func(x float64) float64

// Domain is a closed interval [Lo, Hi]. It doubles as the value range when
// partitioning f's codomain into bands.
type Domain struct {
	Lo float64 `json:"lo" yaml:"lo"`
	Hi float64 `json:"hi" yaml:"hi"`
}

// Width returns Hi − Lo.
func (d Domain) Width() float64 { return d.Hi - d.Lo }

// String formats the interval as "[lo, hi]".
func (d Domain) String() string { return fmt.Sprintf("[%g, %g]", d.Lo, d.Hi) }

// Validate reports ErrInvalidDomain unless both bounds are finite and Lo < Hi.
func (d Domain) Validate() error {
	if !isFinite(d.Lo) || !isFinite(d.Hi) || d.Lo >= d.Hi {
		return fmt.Errorf("%w: %s (need finite lo < hi)", ErrInvalidDomain, d)
	}

	return nil
}

// Point is one evaluated sample (x, f(x)).
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Resolution selects how a routine picks its sample count.
type Resolution int

const (
	// Standard uses the count requested by the caller.
	Standard Resolution = iota
	// Fine replaces the requested count with FineCount as a stand-in for the limit.
	Fine
)

// FineCount is the fixed count used under Fine resolution.
const FineCount = 1000

// Count resolves the effective count for this resolution.
func (r Resolution) Count(requested int) int {
	if r == Fine {
		return FineCount
	}

	return requested
}

// String returns "standard" or "fine".
func (r Resolution) String() string {
	if r == Fine {
		return "fine"
	}

	return "standard"
}

// ParseResolution maps "standard"/"fine" (empty means standard) to a Resolution.
func ParseResolution(s string) (Resolution, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "standard":
		return Standard, nil
	case "fine", "infinite":
		return Fine, nil
	}

	return Standard, fmt.Errorf("sampler: unknown resolution %q", s)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
