// SPDX-License-Identifier: MIT

// Package riemann computes Riemann partial sums Σ f(x*_i)·Δx over uniform
// sub-intervals, together with the rectangles a presentation layer draws.
//
// 🚀 Rules:
//
//	For sub-interval i of width Δx = (Hi − Lo)/n the sample point is
//	  • Left:     Lo + i·Δx
//	  • Right:    Lo + (i+1)·Δx
//	  • Midpoint: Lo + (i+½)·Δx
//
// ✨ Key features:
//   - rectangles with signed heights (Bottom/Top give min(0,h), max(0,h))
//   - WithoutRectangles to skip geometry when only the sum matters
//   - WithResolution(sampler.Fine): the "infinite" toggle, i.e. the same
//     routine with sampler.FineCount partitions and no rectangles
//   - WithSkipFailures: record failing samples instead of aborting
//
// ⚙️ Usage:
//
//	res, err := riemann.Sum(f, sampler.Domain{Lo: 0, Hi: 1}, 100, riemann.Midpoint)
//	fmt.Println(res.Sum)
//
// Complexity: O(n) evaluations, O(n) memory for rectangles (O(1) without).
//
// Errors:
//
//   - ErrInvalidPartitions: n < 1.
//   - ErrUnknownRule:       rule outside {Left, Right, Midpoint}.
//   - sampler errors:       invalid domain, nil function, *sampler.EvalError.
package riemann
