// SPDX-License-Identifier: MIT

package lebesgue

import (
	"errors"

	"github.com/katalvlaran/lvlset/measure"
	"github.com/katalvlaran/lvlset/sampler"
)

const (
	// DefaultCurveSteps is the documented default threshold count of MeasureCurve.
	DefaultCurveSteps = 100

	// DefaultIntegralSteps is the threshold grid of IntegrateMeasureCurve.
	DefaultIntegralSteps = 400

	// CrossCheckPartitions is the Riemann partition count used by CrossCheck.
	CrossCheckPartitions = sampler.FineCount
)

var (
	// ErrInvalidSteps indicates a threshold step count below 1.
	ErrInvalidSteps = errors.New("lebesgue: steps must be >= 1")

	// ErrInvalidRange indicates a value range that is not finite with Lo < Hi.
	ErrInvalidRange = errors.New("lebesgue: invalid value range")
)

// Option configures a composer call. Last writer wins.
type Option func(*options)

type options struct {
	integralSteps int
	measure       []measure.Option
}

// WithIntegralSteps overrides the threshold grid of the integrals.
func WithIntegralSteps(n int) Option {
	return func(o *options) { o.integralSteps = n }
}

// WithSamples sets the x-resolution of every underlying measure call.
func WithSamples(n int) Option {
	return func(o *options) { o.measure = append(o.measure, measure.WithSamples(n)) }
}

// WithResolution applies the Standard/Fine policy to the x-resolution.
func WithResolution(r sampler.Resolution) Option {
	return func(o *options) { o.measure = append(o.measure, measure.WithResolution(r)) }
}

func gatherOptions(opts ...Option) options {
	o := options{integralSteps: DefaultIntegralSteps}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
