// SPDX-License-Identifier: MIT

// Package lvlset is a numerical engine that computes two pictures of the
// integral of a black-box function f on an interval [a, b]:
// the Riemann view, which slices the domain into vertical strips, and the
// Lebesgue view, which slices the range into horizontal bands and measures
// where f lands in each.
//
// 🚀 What is in the box?
//
//	sampler/  — uniform grids, safe evaluation, polylines, resolution policy
//	riemann/  — left, right and midpoint sums with their rectangles
//	measure/  — μ{x : f(x) > t} by left-edge indicator sums
//	levelset/ — disjoint bands, nested layer-cake bands and single-height probes
//	lebesgue/ — the measure curve t ↦ μ(t), its integral and a Riemann cross-check
//	catalog/  — named test functions (x², sin, step, Dirichlet proxy…)
//	memo/     — cache of results keyed by function identity and parameters
//	config/   — YAML defaults for the CLI
//	cmd/lvlset — command-line front end
//
// ✨ Guarantees
//
//   - Pure engines: fresh, caller-owned results; safe for concurrent use.
//   - Every count is validated; nothing divides by zero.
//   - A panic or NaN from f surfaces as *sampler.EvalError instead of a
//     silently wrong sum.
//
// Quick picture of f(x) = 2x on [0,1] with value range [0,2] cut into 4 bands:
//
//	y
//	2 ┤        ╱  band 3: f ∈ [1.5,2.0] on x ∈ [0.75,1.00]
//	  ┤      ╱    band 2: f ∈ [1.0,1.5) on x ∈ [0.50,0.75)
//	1 ┤    ╱      band 1: f ∈ [0.5,1.0) on x ∈ [0.25,0.50)
//	  ┤  ╱        band 0: f ∈ [0.0,0.5) on x ∈ [0.00,0.25)
//	0 ┼╱───────── x
//
//	go install github.com/katalvlaran/lvlset/cmd/lvlset@latest
package lvlset
