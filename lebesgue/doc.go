// SPDX-License-Identifier: MIT

// Package lebesgue composes super-level measures into the measure curve μ(t)
// and integrates it, the "layer cake" view of ∫ f dx.
//
// 🚀 What:
//
//   - MeasureCurve:          μ(t) = |{f > t}| at steps+1 thresholds spanning a value range.
//   - IntegrateMeasureCurve: ∫ μ(t) dt over the value range, midpoint rule on
//     DefaultIntegralSteps (400) threshold cells.
//   - SignedIntegral:        ∫₀ μ{f>t} dt − ∫₋ μ{f<t} dt, so negative parts of f
//     subtract instead of vanishing.
//   - CrossCheck:            layer-cake integral vs. a fine midpoint Riemann sum,
//     computed concurrently.
//
// ✨ Why it works:
//
//	For f ≥ 0, Fubini on the region {(x,t): 0 ≤ t ≤ f(x)} gives
//	∫ f dx = ∫₀^∞ μ(t) dt. When the value range starts at 0 and covers f,
//	IntegrateMeasureCurve is therefore an independent estimate of the Riemann
//	integral. The two use different grids and round independently: expect
//	agreement within the resolution, never bit-for-bit.
//
// Invariants:
//
//   - μ is non-increasing in t (checked by tests, exact on the sampled grid).
//   - μ(t) ∈ [0, domain width].
//
// Errors:
//
//   - ErrInvalidSteps: curve or integral steps < 1.
//   - ErrInvalidRange: value range not finite with Lo < Hi.
//   - measure/sampler errors are passed through wrapped.
package lebesgue
