// SPDX-License-Identifier: MIT

package lebesgue

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlset/riemann"
	"github.com/katalvlaran/lvlset/sampler"
)

// Comparison holds two independent estimates of ∫ f dx.
type Comparison struct {
	LayerCake     float64 `json:"layerCake" yaml:"layerCake"`
	Riemann       float64 `json:"riemann" yaml:"riemann"`
	RelativeError float64 `json:"relativeError" yaml:"relativeError"`
}

// Agrees reports whether the relative error is within tol.
func (c Comparison) Agrees(tol float64) bool { return c.RelativeError <= tol }

// CrossCheck computes SignedIntegral and a CrossCheckPartitions-partition
// midpoint Riemann sum side by side. The two share no state; ctx only bounds
// the errgroup and aborts before work starts if it is already done.
func CrossCheck(ctx context.Context, fn sampler.Func, d, valueRange sampler.Domain, opts ...Option) (Comparison, error) {
	var cmp Comparison
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		v, err := SignedIntegral(fn, d, valueRange, opts...)
		if err != nil {
			return err
		}
		cmp.LayerCake = v

		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		res, err := riemann.Sum(fn, d, CrossCheckPartitions, riemann.Midpoint, riemann.WithoutRectangles())
		if err != nil {
			return err
		}
		cmp.Riemann = res.Sum

		return nil
	})

	if err := g.Wait(); err != nil {
		return Comparison{}, fmt.Errorf("CrossCheck: %w", err)
	}
	cmp.RelativeError = relativeError(cmp.LayerCake, cmp.Riemann)

	return cmp, nil
}

// relativeError returns |a − b| / |b|, or |a − b| when b is zero.
func relativeError(a, b float64) float64 {
	diff := math.Abs(a - b)
	if b == 0 {
		return diff
	}

	return diff / math.Abs(b)
}
