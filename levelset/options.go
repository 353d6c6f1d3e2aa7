// SPDX-License-Identifier: MIT

package levelset

import (
	"fmt"
	"math"
)

const (
	// DefaultSamples is the fixed x-resolution of every slicer.
	DefaultSamples = 400

	// DefaultTolerance is the relative tolerance of the last band's upper bound.
	DefaultTolerance = 1e-9
)

// Option configures a slicer call. Last writer wins.
type Option func(*options)

type options struct {
	samples   int
	tolerance float64
}

// WithSamples sets the x-resolution. Non-positive values surface as
// ErrInvalidSamples from the call.
func WithSamples(n int) Option {
	return func(o *options) { o.samples = n }
}

// WithTolerance sets the relative tolerance of the last band's inclusive bound.
// Negative or non-finite values surface as ErrInvalidTolerance from the call.
func WithTolerance(tol float64) Option {
	return func(o *options) { o.tolerance = tol }
}

func gatherOptions(opts ...Option) (options, error) {
	o := options{samples: DefaultSamples, tolerance: DefaultTolerance}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.samples < 1 {
		return o, fmt.Errorf("%w (got %d)", ErrInvalidSamples, o.samples)
	}
	if math.IsNaN(o.tolerance) || math.IsInf(o.tolerance, 0) || o.tolerance < 0 {
		return o, fmt.Errorf("%w (got %g)", ErrInvalidTolerance, o.tolerance)
	}

	return o, nil
}

// upperSlack returns ε for the last band of a value range [lo, hi].
func (o options) upperSlack(lo, hi float64) float64 {
	return o.tolerance * math.Max(1, math.Max(math.Abs(lo), math.Abs(hi)))
}
