// SPDX-License-Identifier: MIT

// Package sampler discretizes a bounded interval into uniform grids and
// evaluates a black-box scalar function on them.
//
// 🚀 What is sampler?
//
//	The shared bottom layer of lvlset. Every higher-level routine (Riemann
//	sums, super-level measures, level-set slicing, the μ(t) curve) asks
//	sampler for its x-positions and routes each f(x) call through Eval:
//	  • Sample:   steps+1 evenly spaced values from Lo to Hi inclusive
//	  • Cells:    N equal cells with left/mid/right sample positions
//	  • Eval:     guarded evaluation (panics and NaN/±Inf become *EvalError)
//	  • Polyline: ordered (x, f(x)) points approximating the graph
//
// ✨ Numeric policy:
//   - The last value of Sample and the right edge of the last cell are pinned
//     to exactly Hi; no floating-point step error at the endpoint.
//   - A degenerate domain (Lo == Hi) is accepted by Sample only and yields
//     repeated points; every cell-based routine requires Lo < Hi.
//   - Counts are validated before any division.
//
// ⚙️ Resolution:
//
//	Resolution is a caller policy, not an algorithm: Fine substitutes the
//	large fixed count FineCount for a true limit, Standard keeps whatever the
//	caller asked for.
//
// Errors:
//
//   - ErrInvalidDomain: non-finite bounds, Lo > Hi, or Lo == Hi where cells are needed.
//   - ErrInvalidSteps:  steps/cell count < 1.
//   - ErrNilFunc:       nil function.
//   - ErrEvaluation:    the function panicked or returned NaN/±Inf (see EvalError).
package sampler
