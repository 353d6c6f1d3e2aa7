// SPDX-License-Identifier: MIT

package lebesgue

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlset/measure"
	"github.com/katalvlaran/lvlset/sampler"
)

// CurvePoint is one sample (t, μ(t)) of the measure curve.
type CurvePoint struct {
	T  float64 `json:"t" yaml:"t"`
	Mu float64 `json:"mu" yaml:"mu"`
}

// MeasureCurve evaluates μ(t) = |{x ∈ d : f(x) > t}| at steps+1 thresholds
// evenly spaced over valueRange (both ends included).
//
// f is sampled once and every threshold is answered from that profile; the
// result is identical to calling measure.Superlevel per threshold.
//
// Complexity: O(samples) evaluations, O(samples·steps) comparisons.
func MeasureCurve(fn sampler.Func, d, valueRange sampler.Domain, steps int, opts ...Option) ([]CurvePoint, error) {
	if steps < 1 {
		return nil, fmt.Errorf("MeasureCurve: %w (got %d)", ErrInvalidSteps, steps)
	}
	if err := valueRange.Validate(); err != nil {
		return nil, fmt.Errorf("MeasureCurve: %w: %s", ErrInvalidRange, valueRange)
	}
	o := gatherOptions(opts...)
	p, err := measure.Evaluate(fn, d, o.measure...)
	if err != nil {
		return nil, fmt.Errorf("MeasureCurve: %w", err)
	}
	ts, err := sampler.Sample(valueRange, steps)
	if err != nil {
		return nil, fmt.Errorf("MeasureCurve: %w", err)
	}

	curve := make([]CurvePoint, len(ts))
	for i, t := range ts {
		curve[i] = CurvePoint{T: t, Mu: p.Superlevel(t)}
	}

	return curve, nil
}

// IntegrateMeasureCurve approximates ∫ μ(t) dt over valueRange with the
// midpoint rule: Σ μ(t_mid,i)·dt over DefaultIntegralSteps cells.
//
// With valueRange = [0, max f] and f ≥ 0 the result approximates ∫ f dx.
func IntegrateMeasureCurve(fn sampler.Func, d, valueRange sampler.Domain, opts ...Option) (float64, error) {
	if err := valueRange.Validate(); err != nil {
		return 0, fmt.Errorf("IntegrateMeasureCurve: %w: %s", ErrInvalidRange, valueRange)
	}
	o := gatherOptions(opts...)
	if o.integralSteps < 1 {
		return 0, fmt.Errorf("IntegrateMeasureCurve: %w (got %d)", ErrInvalidSteps, o.integralSteps)
	}
	p, err := measure.Evaluate(fn, d, o.measure...)
	if err != nil {
		return 0, fmt.Errorf("IntegrateMeasureCurve: %w", err)
	}

	return midpoint(valueRange, o.integralSteps, p.Superlevel), nil
}

// SignedIntegral integrates positive and negative parts separately:
//
//	∫₀^{max(Hi,0)} μ{f > t} dt − ∫_{min(Lo,0)}^0 μ{f < t} dt
//
// Values of f beyond valueRange are clipped to it. The result approximates
// ∫ f dx for functions of either sign when valueRange covers f.
func SignedIntegral(fn sampler.Func, d, valueRange sampler.Domain, opts ...Option) (float64, error) {
	if err := valueRange.Validate(); err != nil {
		return 0, fmt.Errorf("SignedIntegral: %w: %s", ErrInvalidRange, valueRange)
	}
	o := gatherOptions(opts...)
	if o.integralSteps < 1 {
		return 0, fmt.Errorf("SignedIntegral: %w (got %d)", ErrInvalidSteps, o.integralSteps)
	}
	p, err := measure.Evaluate(fn, d, o.measure...)
	if err != nil {
		return 0, fmt.Errorf("SignedIntegral: %w", err)
	}

	var total float64
	if hi := math.Max(valueRange.Hi, 0); hi > 0 {
		total += midpoint(sampler.Domain{Lo: 0, Hi: hi}, o.integralSteps, p.Superlevel)
	}
	if lo := math.Min(valueRange.Lo, 0); lo < 0 {
		total -= midpoint(sampler.Domain{Lo: lo, Hi: 0}, o.integralSteps, p.Sublevel)
	}

	return total, nil
}

// midpoint integrates mu over r with n midpoint cells. r must have Lo < Hi.
func midpoint(r sampler.Domain, n int, mu func(t float64) float64) float64 {
	g, err := sampler.Cells(r, n)
	if err != nil {
		return 0
	}

	var sum float64
	for i := 0; i < n; i++ {
		sum += mu(g.Midpoint(i)) * g.Dx
	}

	return sum
}
