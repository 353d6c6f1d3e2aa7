// SPDX-License-Identifier: MIT

package levelset

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlset/sampler"
)

// LevelSlices partitions valueRange into levelCount disjoint bands and returns
// one Slice per band, lowest band first.
//
// Band i covers [lo + i·dt, lo + (i+1)·dt) with dt = (hi − lo)/levelCount; the
// last band is [yLower, hi + ε]. Samples outside the value range belong to no
// band, so every sample inside it is counted by exactly one band.
//
// Complexity: O(samples) evaluations, O(samples·levelCount) comparisons.
func LevelSlices(fn sampler.Func, d, valueRange sampler.Domain, levelCount int, opts ...Option) ([]Slice, error) {
	return banded(fn, d, valueRange, levelCount, opts, false)
}

// LayerCake partitions valueRange like LevelSlices but band i collects every
// sample with f(x) ≥ yLower_i, so the bands are nested super-level sets.
func LayerCake(fn sampler.Func, d, valueRange sampler.Domain, levelCount int, opts ...Option) ([]Slice, error) {
	return banded(fn, d, valueRange, levelCount, opts, true)
}

// SliceAt probes a single height t: the returned Slice has YBase t, Height dt
// and the merged runs of f(x) ≥ t.
func SliceAt(fn sampler.Func, d sampler.Domain, t, dt float64, opts ...Option) (Slice, error) {
	if math.IsNaN(t) || math.IsInf(t, 0) || !(dt > 0) || math.IsInf(dt, 0) {
		return Slice{}, fmt.Errorf("SliceAt: %w (t=%g dt=%g)", ErrInvalidHeight, t, dt)
	}
	o, err := gatherOptions(opts...)
	if err != nil {
		return Slice{}, fmt.Errorf("SliceAt: %w", err)
	}
	g, ys, err := evaluate(fn, d, o)
	if err != nil {
		return Slice{}, fmt.Errorf("SliceAt: %w", err)
	}

	segs, m := mergeRuns(g, ys, func(y float64) bool { return y >= t })

	return Slice{YBase: t, Height: dt, Segments: segs, Measure: m}, nil
}

func banded(fn sampler.Func, d, valueRange sampler.Domain, levelCount int, opts []Option, cumulative bool) ([]Slice, error) {
	op := "LevelSlices"
	if cumulative {
		op = "LayerCake"
	}
	if levelCount < 1 {
		return nil, fmt.Errorf("%s: %w (got %d)", op, ErrInvalidLevels, levelCount)
	}
	if err := valueRange.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w: %s", op, ErrInvalidRange, valueRange)
	}
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	g, ys, err := evaluate(fn, d, o)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	dt := valueRange.Width() / float64(levelCount)
	slack := o.upperSlack(valueRange.Lo, valueRange.Hi)
	slices := make([]Slice, levelCount)
	for i := range slices {
		lower := valueRange.Lo + float64(i)*dt
		upper := valueRange.Lo + float64(i+1)*dt
		last := i == levelCount-1
		if last {
			upper = valueRange.Hi
		}

		var in func(float64) bool
		switch {
		case cumulative:
			in = func(y float64) bool { return y >= lower }
		case last:
			in = func(y float64) bool { return y >= lower && y <= upper+slack }
		default:
			in = func(y float64) bool { return y >= lower && y < upper }
		}

		segs, m := mergeRuns(g, ys, in)
		slices[i] = Slice{YBase: lower, Height: dt, Segments: segs, Measure: m}
	}

	return slices, nil
}

// evaluate samples fn at the left edge of every detection cell.
func evaluate(fn sampler.Func, d sampler.Domain, o options) (sampler.Grid, []float64, error) {
	if fn == nil {
		return sampler.Grid{}, nil, sampler.ErrNilFunc
	}
	g, err := sampler.Cells(d, o.samples)
	if err != nil {
		return sampler.Grid{}, nil, err
	}
	ys, err := sampler.Values(fn, g)
	if err != nil {
		return sampler.Grid{}, nil, err
	}

	return g, ys, nil
}
