// SPDX-License-Identifier: MIT
package levelset_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlset/levelset"
	"github.com/katalvlaran/lvlset/sampler"
)

var (
	unit     = sampler.Domain{Lo: 0, Hi: 1}
	fullTurn = sampler.Domain{Lo: 0, Hi: 2 * math.Pi}
)

func constant(c float64) sampler.Func { return func(float64) float64 { return c } }

// leftEdges reproduces the detection grid used by the slicers.
func leftEdges(t *testing.T, d sampler.Domain, n int) []float64 {
	g, err := sampler.Cells(d, n)
	require.NoError(t, err)
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = g.LeftEdge(i)
	}

	return xs
}

// assertWellFormed checks ordering, positivity and measure/length consistency.
func assertWellFormed(t *testing.T, s levelset.Slice, dx float64) {
	t.Helper()
	for i, seg := range s.Segments {
		assert.Less(t, seg.Start, seg.End, "segment %d must have positive length", i)
		if i > 0 {
			assert.Less(t, s.Segments[i-1].End, seg.Start, "segments must be increasing and non-touching")
		}
	}
	assert.GreaterOrEqual(t, s.Measure, 0.0)
	assert.InDelta(t, s.Measure, s.Length(), dx, "measure equals segment length within one cell")
}

//----------------------------------------------------------------------------//
// LevelSlices
//----------------------------------------------------------------------------//

// TestLevelSlices_ConstantBand: a constant lands in one band spanning the domain.
func TestLevelSlices_ConstantBand(t *testing.T) {
	slices, err := levelset.LevelSlices(constant(0.6), unit, unit, 4)
	require.NoError(t, err)
	require.Len(t, slices, 4)

	for i, s := range slices {
		assert.InDelta(t, 0.25*float64(i), s.YBase, 1e-12)
		assert.Equal(t, 0.25, s.Height)
		if i == 2 {
			require.Len(t, s.Segments, 1)
			assert.Equal(t, levelset.Segment{Start: 0, End: 1}, s.Segments[0])
			assert.InDelta(t, 1.0, s.Measure, 1e-9)

			continue
		}
		assert.NotNil(t, s.Segments, "empty bands still return a list")
		assert.Empty(t, s.Segments, "band %d", i)
		assert.Equal(t, 0.0, s.Measure, "band %d", i)
	}
}

// TestLevelSlices_RangeMaximum: samples exactly at the range maximum fall in
// the last band, which is closed above.
func TestLevelSlices_RangeMaximum(t *testing.T) {
	slices, err := levelset.LevelSlices(constant(1), unit, unit, 4)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, slices[3].Measure, 1e-9)
	for _, s := range slices[:3] {
		assert.Empty(t, s.Segments)
	}
}

// TestLevelSlices_Tolerance: the slack above the last band is relative to the
// range magnitude and can be switched off.
func TestLevelSlices_Tolerance(t *testing.T) {
	above := constant(1 + 1e-12)
	slices, err := levelset.LevelSlices(above, unit, unit, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, slices[1].Measure, 1e-9, "within default slack")

	slices, err = levelset.LevelSlices(above, unit, unit, 2, levelset.WithTolerance(0))
	require.NoError(t, err)
	assert.Equal(t, 0.0, slices[1].Measure, "no slack without tolerance")

	big := sampler.Domain{Lo: 0, Hi: 1e6}
	slices, err = levelset.LevelSlices(constant(1e6+1e-4), unit, big, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, slices[1].Measure, 1e-9, "slack scales with |range|")
}

// TestLevelSlices_Partition: with the range covering f, every sample is in
// exactly one band and the band measures add up to the domain width.
func TestLevelSlices_Partition(t *testing.T) {
	slices, err := levelset.LevelSlices(math.Sin, fullTurn, sampler.Domain{Lo: -1, Hi: 1}, 8)
	require.NoError(t, err)
	dx := fullTurn.Width() / levelset.DefaultSamples

	var total float64
	for _, s := range slices {
		assertWellFormed(t, s, dx)
		total += s.Measure
	}
	assert.InDelta(t, fullTurn.Width(), total, 1e-9)

	for _, x := range leftEdges(t, fullTurn, levelset.DefaultSamples) {
		owners := 0
		for _, s := range slices {
			if s.Contains(x) {
				owners++
			}
		}
		assert.Equal(t, 1, owners, "sample x=%g must belong to exactly one band", x)
	}
}

// TestLevelSlices_Negative: negative values are banded like any other.
func TestLevelSlices_Negative(t *testing.T) {
	neg := func(x float64) float64 { return -x }
	slices, err := levelset.LevelSlices(neg, unit, sampler.Domain{Lo: -1, Hi: 0}, 2, levelset.WithSamples(8))
	require.NoError(t, err)

	// y_i = -i/8; band 0 = [-1, -0.5), band 1 = [-0.5, 0].
	assert.Equal(t, []levelset.Segment{{Start: 0.625, End: 1}}, slices[0].Segments)
	assert.Equal(t, 0.375, slices[0].Measure)
	assert.Equal(t, []levelset.Segment{{Start: 0, End: 0.625}}, slices[1].Segments)
	assert.Equal(t, 0.625, slices[1].Measure)
}

// TestLevelSlices_OutOfRange: values outside the range belong to no band.
func TestLevelSlices_OutOfRange(t *testing.T) {
	slices, err := levelset.LevelSlices(constant(5), unit, unit, 3)
	require.NoError(t, err)
	for _, s := range slices {
		assert.Empty(t, s.Segments)
		assert.Zero(t, s.Measure)
	}
}

//----------------------------------------------------------------------------//
// LayerCake
//----------------------------------------------------------------------------//

// TestLayerCake_Nested: band i contains band i+1 sample by sample.
func TestLayerCake_Nested(t *testing.T) {
	f := func(x float64) float64 { return 1 + math.Sin(3*x)*math.Cos(x) }
	slices, err := levelset.LayerCake(f, fullTurn, sampler.Domain{Lo: 0, Hi: 2}, 10)
	require.NoError(t, err)
	dx := fullTurn.Width() / levelset.DefaultSamples
	xs := leftEdges(t, fullTurn, levelset.DefaultSamples)

	for i, s := range slices {
		assertWellFormed(t, s, dx)
		if i == 0 {
			continue
		}
		prev := slices[i-1]
		assert.GreaterOrEqual(t, prev.Measure, s.Measure, "measures shrink with height")
		for _, x := range xs {
			if s.Contains(x) {
				assert.True(t, prev.Contains(x), "band %d must contain x=%g of band %d", i-1, x, i)
			}
		}
	}
}

// TestLayerCake_Integral: Σ μ_i·dt approximates ∫2x dx = 1 within 1%.
func TestLayerCake_Integral(t *testing.T) {
	double := func(x float64) float64 { return 2 * x }
	slices, err := levelset.LayerCake(double, unit, sampler.Domain{Lo: 0, Hi: 2}, 200)
	require.NoError(t, err)

	var area float64
	for _, s := range slices {
		area += s.Measure * s.Height
	}
	assert.InEpsilon(t, 1.0, area, 0.01)
}

// TestLayerCake_BaseBand: the lowest band of a non-negative function spans the domain.
func TestLayerCake_BaseBand(t *testing.T) {
	slices, err := levelset.LayerCake(math.Sin, sampler.Domain{Lo: 0, Hi: math.Pi}, sampler.Domain{Lo: 0, Hi: 1}, 5)
	require.NoError(t, err)
	require.Len(t, slices[0].Segments, 1)
	assert.Equal(t, levelset.Segment{Start: 0, End: math.Pi}, slices[0].Segments[0])
}

//----------------------------------------------------------------------------//
// SliceAt
//----------------------------------------------------------------------------//

// TestSliceAt_Runs: two separate plateaus become two segments; the open run
// at the end closes at Hi.
func TestSliceAt_Runs(t *testing.T) {
	step := func(x float64) float64 {
		if (x >= 0.25 && x < 0.5) || x >= 0.75 {
			return 1
		}

		return 0
	}
	s, err := levelset.SliceAt(step, unit, 0.5, 0.1, levelset.WithSamples(8))
	require.NoError(t, err)
	assert.Equal(t, 0.5, s.YBase)
	assert.Equal(t, 0.1, s.Height)
	assert.Equal(t, []levelset.Segment{{Start: 0.25, End: 0.5}, {Start: 0.75, End: 1}}, s.Segments)
	assert.Equal(t, 0.5, s.Measure)
}

// TestSliceAt_Inclusive: the probe predicate is f(x) ≥ t.
func TestSliceAt_Inclusive(t *testing.T) {
	s, err := levelset.SliceAt(constant(2), unit, 2, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, s.Measure, 1e-9)

	s, err = levelset.SliceAt(constant(2), unit, 2.0001, 0.5)
	require.NoError(t, err)
	assert.Empty(t, s.Segments)
	assert.Zero(t, s.Measure)
}

// TestSliceAt_Clone: clones never share segment storage.
func TestSliceAt_Clone(t *testing.T) {
	s, err := levelset.SliceAt(math.Sin, fullTurn, 0, 0.1)
	require.NoError(t, err)
	c := s.Clone()
	require.NotEmpty(t, c.Segments)
	c.Segments[0].Start = -99
	assert.NotEqual(t, -99.0, s.Segments[0].Start)
}

//----------------------------------------------------------------------------//
// Errors
//----------------------------------------------------------------------------//

// TestErrors covers the invalid-parameter taxonomy for all three slicers.
func TestErrors(t *testing.T) {
	f := constant(0.5)
	cases := []struct {
		name string
		call func() error
		want error
	}{
		{"ZeroLevels", func() error { _, err := levelset.LevelSlices(f, unit, unit, 0); return err }, levelset.ErrInvalidLevels},
		{"ZeroLevelsCake", func() error { _, err := levelset.LayerCake(f, unit, unit, 0); return err }, levelset.ErrInvalidLevels},
		{"ZeroSamples", func() error {
			_, err := levelset.LevelSlices(f, unit, unit, 2, levelset.WithSamples(0))
			return err
		}, levelset.ErrInvalidSamples},
		{"BadTolerance", func() error {
			_, err := levelset.LayerCake(f, unit, unit, 2, levelset.WithTolerance(-1))
			return err
		}, levelset.ErrInvalidTolerance},
		{"FlatRange", func() error {
			_, err := levelset.LevelSlices(f, unit, sampler.Domain{Lo: 1, Hi: 1}, 2)
			return err
		}, levelset.ErrInvalidRange},
		{"BadDomain", func() error {
			_, err := levelset.LevelSlices(f, sampler.Domain{Lo: 1, Hi: 0}, unit, 2)
			return err
		}, sampler.ErrInvalidDomain},
		{"ZeroHeight", func() error { _, err := levelset.SliceAt(f, unit, 0.5, 0); return err }, levelset.ErrInvalidHeight},
		{"NaNProbe", func() error { _, err := levelset.SliceAt(f, unit, math.NaN(), 1); return err }, levelset.ErrInvalidHeight},
		{"NilFunc", func() error { _, err := levelset.SliceAt(nil, unit, 0.5, 1); return err }, sampler.ErrNilFunc},
		{"NonFinite", func() error {
			_, err := levelset.LayerCake(math.Log, unit, unit, 2)
			return err
		}, sampler.ErrNonFinite},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.call(), tc.want)
		})
	}
}
