// SPDX-License-Identifier: MIT

package riemann

import "github.com/katalvlaran/lvlset/sampler"

// DefaultResolution keeps the caller's partition count.
const DefaultResolution = sampler.Standard

// Option mutates the internal options of a Sum call. Last writer wins.
type Option func(*options)

type options struct {
	resolution   sampler.Resolution
	noRectangles bool
	skipFailures bool
}

// WithResolution selects Standard (caller count) or Fine (sampler.FineCount
// partitions, rectangles suppressed).
func WithResolution(r sampler.Resolution) Option {
	return func(o *options) { o.resolution = r }
}

// WithoutRectangles skips rectangle construction; Result.Rectangles stays nil.
func WithoutRectangles() Option {
	return func(o *options) { o.noRectangles = true }
}

// WithSkipFailures records failing samples in Result.Failures instead of
// aborting. A skipped sample contributes nothing to the sum and no rectangle.
func WithSkipFailures() Option {
	return func(o *options) { o.skipFailures = true }
}

func gatherOptions(opts ...Option) options {
	o := options{resolution: DefaultResolution}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.resolution == sampler.Fine {
		o.noRectangles = true
	}

	return o
}
