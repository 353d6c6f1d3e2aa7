// SPDX-License-Identifier: MIT

package measure

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlset/sampler"
)

// Superlevel returns the approximate measure of {x ∈ d : f(x) > t}.
func Superlevel(fn sampler.Func, d sampler.Domain, t float64, opts ...Option) (float64, error) {
	m, err := indicatorSum(fn, d, t, func(y float64) bool { return y > t }, opts)
	if err != nil {
		return 0, fmt.Errorf("Superlevel: %w", err)
	}

	return m, nil
}

// Sublevel returns the approximate measure of {x ∈ d : f(x) < t}.
func Sublevel(fn sampler.Func, d sampler.Domain, t float64, opts ...Option) (float64, error) {
	m, err := indicatorSum(fn, d, t, func(y float64) bool { return y < t }, opts)
	if err != nil {
		return 0, fmt.Errorf("Sublevel: %w", err)
	}

	return m, nil
}

// Evaluate samples fn once on the grid used by Superlevel/Sublevel and returns
// a reusable Profile. Callers that query many thresholds against the same
// function (the μ(t) curve) avoid re-evaluating f per threshold.
func Evaluate(fn sampler.Func, d sampler.Domain, opts ...Option) (*Profile, error) {
	o := gatherOptions(opts...)
	if o.samples < 1 {
		return nil, fmt.Errorf("Evaluate: %w (got %d)", ErrInvalidSamples, o.samples)
	}
	g, err := sampler.Cells(d, o.samples)
	if err != nil {
		return nil, fmt.Errorf("Evaluate: %w", err)
	}
	ys, err := sampler.Values(fn, g)
	if err != nil {
		return nil, fmt.Errorf("Evaluate: %w", err)
	}

	return &Profile{grid: g, ys: ys}, nil
}

// Profile is an immutable set of left-edge samples of one function.
// It is safe for concurrent use.
type Profile struct {
	grid sampler.Grid
	ys   []float64
}

// Dx returns the cell width.
func (p *Profile) Dx() float64 { return p.grid.Dx }

// Samples returns the number of cells.
func (p *Profile) Samples() int { return p.grid.N }

// Range returns the smallest and largest sampled value.
func (p *Profile) Range() sampler.Domain {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, y := range p.ys {
		lo = math.Min(lo, y)
		hi = math.Max(hi, y)
	}

	return sampler.Domain{Lo: lo, Hi: hi}
}

// Superlevel returns the measure of {f > t} on the profile's samples.
func (p *Profile) Superlevel(t float64) float64 {
	return p.count(func(y float64) bool { return y > t })
}

// Sublevel returns the measure of {f < t} on the profile's samples.
func (p *Profile) Sublevel(t float64) float64 {
	return p.count(func(y float64) bool { return y < t })
}

func (p *Profile) count(pred func(float64) bool) float64 {
	var m float64
	for _, y := range p.ys {
		if pred(y) {
			m += p.grid.Dx
		}
	}

	return m
}

func indicatorSum(fn sampler.Func, d sampler.Domain, t float64, pred func(float64) bool, opts []Option) (float64, error) {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return 0, fmt.Errorf("%w (got %g)", ErrInvalidThreshold, t)
	}
	p, err := Evaluate(fn, d, opts...)
	if err != nil {
		return 0, err
	}

	return p.count(pred), nil
}
