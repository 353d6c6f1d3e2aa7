// SPDX-License-Identifier: MIT

// Package measure approximates the Lebesgue measure of super-level and
// sub-level sets of a sampled function.
//
// What:
//
//   - Superlevel(f, d, t) ≈ |{x ∈ d : f(x) > t}| (strict inequality).
//   - Sublevel(f, d, t)   ≈ |{x ∈ d : f(x) < t}| (strict inequality).
//
// Algorithm:
//
//	Partition d into `samples` equal cells of width dx (default 400). For each
//	cell test the predicate at its left edge and add dx when it holds. This is a
//	left-sample indicator sum of ∫ 1[f(x) > t] dx.
//
// Accuracy:
//
//	Using only the left edge misclassifies at most the one cell that contains a
//	crossing of the level t (or a discontinuity). The error is therefore bounded
//	by dx = width/samples per crossing: for a function that crosses t k times the
//	result is within k·dx of the true measure. Results are deterministic.
//
// Monotonicity:
//
//	For t1 < t2 every sample with f > t2 also has f > t1, so
//	Superlevel(t1) ≥ Superlevel(t2) holds exactly, not just approximately.
//
// Errors:
//
//   - ErrInvalidSamples:   sample count < 1.
//   - ErrInvalidThreshold: t is NaN or ±Inf.
//   - sampler errors:      invalid domain, nil function, *sampler.EvalError.
package measure
