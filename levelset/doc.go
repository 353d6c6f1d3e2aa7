// SPDX-License-Identifier: MIT

// Package levelset slices a function's value range into horizontal bands and
// recovers, per band, the maximal x-intervals where the sampled function lies
// in that band.
//
// 🚀 Modes:
//
//   - LevelSlices: disjoint bands [yLower, yUpper) over the value range; the
//     last band is closed above (yUpper + ε). This is the simple-function
//     decomposition: every sample in the range lands in exactly one band.
//   - LayerCake:   cumulative super-level bands f(x) ≥ yLower. Bands are
//     nested; band i's set contains band i+1's ("stack of layers").
//   - SliceAt:     one probe at an arbitrary height t with predicate f(x) ≥ t.
//
// ✨ Run-length merge:
//
//	All three modes share one fold over left-edge samples with two states,
//	outside and inside. outside→inside records the run start; inside→outside
//	emits the segment [start, x); a run still open after the last sample
//	closes at the domain's Hi. A band's Measure is its in-band sample count
//	times dx, which equals the sum of its segment lengths.
//
// ⚙️ Two independent resolutions:
//
//	The x-resolution of detection is fixed at DefaultSamples (400) cells no
//	matter how many bands are requested; levelCount only controls how finely
//	the value range is banded. WithSamples changes the former, never the latter.
//
// Tolerance policy:
//
//	The last band's inclusive upper bound is yUpper + ε with
//	ε = tol · max(1, |range.Lo|, |range.Hi|) and tol = DefaultTolerance (1e-9)
//	unless WithTolerance says otherwise. The absolute floor of 1 keeps ε
//	meaningful for ranges near zero; the relative part scales with magnitude.
//
// Errors:
//
//   - ErrInvalidLevels:    levelCount < 1.
//   - ErrInvalidRange:     value range not finite with Lo < Hi.
//   - ErrInvalidHeight:    SliceAt probe with non-finite t or dt ≤ 0.
//   - ErrInvalidSamples:   x-resolution < 1.
//   - ErrInvalidTolerance: negative or non-finite tolerance.
//   - sampler errors:      invalid domain, nil function, *sampler.EvalError.
package levelset
