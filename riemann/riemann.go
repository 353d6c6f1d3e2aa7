// SPDX-License-Identifier: MIT

package riemann

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlset/sampler"
)

// Sum computes the Riemann partial sum of fn over d with n uniform partitions.
//
// Algorithm:
//  1. Validate n ≥ 1, then resolve n through the resolution policy
//     (Fine ⇒ sampler.FineCount).
//  2. Validate rule and domain; Δx = (Hi − Lo)/n.
//  3. For i = 0..n−1: x = rule(i); y = f(x); sum += y·Δx, in order.
//     Unless suppressed, append Rectangle{X: Lo+i·Δx, Width: Δx, Height: y}.
//  4. A failing sample aborts with *sampler.EvalError, or is recorded in
//     Result.Failures under WithSkipFailures.
//
// Complexity: O(n) evaluations.
func Sum(fn sampler.Func, d sampler.Domain, n int, rule Rule, opts ...Option) (Result, error) {
	if n < 1 {
		return Result{}, fmt.Errorf("Sum: %w (got %d)", ErrInvalidPartitions, n)
	}
	o := gatherOptions(opts...)
	n = o.resolution.Count(n)

	if rule < Left || rule > Midpoint {
		return Result{}, fmt.Errorf("Sum: %w: %v", ErrUnknownRule, rule)
	}
	if fn == nil {
		return Result{}, fmt.Errorf("Sum: %w", sampler.ErrNilFunc)
	}
	g, err := sampler.Cells(d, n)
	if err != nil {
		return Result{}, fmt.Errorf("Sum: %w", err)
	}

	res := Result{Rule: rule, Partitions: n, Dx: g.Dx}
	if !o.noRectangles {
		res.Rectangles = make([]Rectangle, 0, n)
	}

	for i := 0; i < n; i++ {
		x := rule.samplePoint(g, i)
		y, err := sampler.Eval(fn, x)
		if err != nil {
			var ee *sampler.EvalError
			if o.skipFailures && errors.As(err, &ee) {
				res.Failures = append(res.Failures, ee)

				continue
			}

			return Result{}, fmt.Errorf("Sum: sub-interval %d: %w", i, err)
		}

		res.Sum += y * g.Dx
		if !o.noRectangles {
			res.Rectangles = append(res.Rectangles, Rectangle{X: g.LeftEdge(i), Width: g.Dx, Height: y})
		}
	}

	return res, nil
}
