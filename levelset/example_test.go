// SPDX-License-Identifier: MIT
package levelset_test

import (
	"fmt"

	"github.com/katalvlaran/lvlset/levelset"
	"github.com/katalvlaran/lvlset/sampler"
)

////////////////////////////////////////////////////////////////////////////////
// Example: LevelSlices
////////////////////////////////////////////////////////////////////////////////

// ExampleLevelSlices decomposes a tent function into two disjoint bands.
// Scenario:
//
//   - f(x) = 1 − |2x − 1| on [0,1], a tent peaking at x = 0.5
//   - value range [0,1] split into [0,0.5) and [0.5,1]
//   - 8 detection cells so the segment edges are easy to read
//
// The lower band is two runs (the tent's flanks), the upper band one run.
func ExampleLevelSlices() {
	tent := func(x float64) float64 {
		if x < 0.5 {
			return 2 * x
		}

		return 2 - 2*x
	}
	slices, err := levelset.LevelSlices(tent, sampler.Domain{Lo: 0, Hi: 1}, sampler.Domain{Lo: 0, Hi: 1}, 2,
		levelset.WithSamples(8))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, s := range slices {
		fmt.Printf("band %.1f: segments=%v measure=%.3f\n", s.YBase, s.Segments, s.Measure)
	}
	// Output:
	// band 0.0: segments=[{0 0.25} {0.875 1}] measure=0.375
	// band 0.5: segments=[{0.25 0.875}] measure=0.625
}

// ExampleLayerCake stacks the same tent as nested super-level layers.
func ExampleLayerCake() {
	tent := func(x float64) float64 {
		if x < 0.5 {
			return 2 * x
		}

		return 2 - 2*x
	}
	slices, _ := levelset.LayerCake(tent, sampler.Domain{Lo: 0, Hi: 1}, sampler.Domain{Lo: 0, Hi: 1}, 2,
		levelset.WithSamples(8))
	for _, s := range slices {
		fmt.Printf("f >= %.1f: segments=%v measure=%.3f\n", s.YBase, s.Segments, s.Measure)
	}
	// Output:
	// f >= 0.0: segments=[{0 1}] measure=1.000
	// f >= 0.5: segments=[{0.25 0.875}] measure=0.625
}
