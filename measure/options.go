// SPDX-License-Identifier: MIT

package measure

import (
	"errors"

	"github.com/katalvlaran/lvlset/sampler"
)

// DefaultSamples is the x-resolution of every measure call.
const DefaultSamples = 400

var (
	// ErrInvalidSamples indicates a sample count below 1.
	ErrInvalidSamples = errors.New("measure: samples must be >= 1")

	// ErrInvalidThreshold indicates a NaN or infinite threshold.
	ErrInvalidThreshold = errors.New("measure: threshold must be finite")
)

// Option configures a measure call. Last writer wins.
type Option func(*options)

type options struct {
	samples    int
	resolution sampler.Resolution
}

// WithSamples sets the number of cells. Non-positive values are reported as
// ErrInvalidSamples by the call that receives them.
func WithSamples(n int) Option {
	return func(o *options) { o.samples = n }
}

// WithResolution applies the Standard/Fine policy to the sample count.
func WithResolution(r sampler.Resolution) Option {
	return func(o *options) { o.resolution = r }
}

func gatherOptions(opts ...Option) options {
	o := options{samples: DefaultSamples, resolution: sampler.Standard}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.samples >= 1 {
		o.samples = o.resolution.Count(o.samples)
	}

	return o
}
