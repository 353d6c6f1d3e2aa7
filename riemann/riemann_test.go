// SPDX-License-Identifier: MIT
package riemann_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlset/riemann"
	"github.com/katalvlaran/lvlset/sampler"
)

var unit = sampler.Domain{Lo: 0, Hi: 1}

func square(x float64) float64 { return x * x }
func double(x float64) float64 { return 2 * x }

// SumSuite groups the Riemann engine tests.
type SumSuite struct {
	suite.Suite
}

// TestRules: 2x on [0,1] with n=4 gives 0.75 / 1.25 / 1.0 for left / right / midpoint.
func (s *SumSuite) TestRules() {
	cases := []struct {
		rule riemann.Rule
		want float64
	}{
		{riemann.Left, 0.75},
		{riemann.Right, 1.25},
		{riemann.Midpoint, 1.0},
	}
	for _, tc := range cases {
		res, err := riemann.Sum(double, unit, 4, tc.rule)
		require.NoError(s.T(), err)
		assert.InDelta(s.T(), tc.want, res.Sum, 1e-12, "rule %v", tc.rule)
		assert.Equal(s.T(), 0.25, res.Dx)
		assert.Equal(s.T(), 4, res.Partitions)
		require.Len(s.T(), res.Rectangles, 4)
	}
}

// TestRectangles: rectangle x positions are left edges regardless of rule and
// heights carry the sampled value.
func (s *SumSuite) TestRectangles() {
	res, err := riemann.Sum(double, unit, 4, riemann.Right)
	require.NoError(s.T(), err)
	wantX := []float64{0, 0.25, 0.5, 0.75}
	wantH := []float64{0.5, 1, 1.5, 2}
	var area float64
	for i, r := range res.Rectangles {
		assert.InDelta(s.T(), wantX[i], r.X, 1e-12)
		assert.InDelta(s.T(), wantH[i], r.Height, 1e-12)
		assert.Equal(s.T(), 0.25, r.Width)
		area += r.Area()
	}
	assert.InDelta(s.T(), res.Sum, area, 1e-12, "rectangle areas add up to the sum")
}

// TestNegativeHeights: rectangles below the axis keep their sign.
func (s *SumSuite) TestNegativeHeights() {
	res, err := riemann.Sum(func(x float64) float64 { return -3 }, sampler.Domain{Lo: 0, Hi: 2}, 2, riemann.Left)
	require.NoError(s.T(), err)
	assert.InDelta(s.T(), -6.0, res.Sum, 1e-12)
	r := res.Rectangles[0]
	assert.Equal(s.T(), -3.0, r.Bottom())
	assert.Equal(s.T(), 0.0, r.Top())
}

// TestConvergence: the error against ∫x² = 1/3 shrinks for n = 10, 100, 1000.
func (s *SumSuite) TestConvergence() {
	for _, rule := range []riemann.Rule{riemann.Left, riemann.Right, riemann.Midpoint} {
		prev := math.Inf(1)
		for _, n := range []int{10, 100, 1000} {
			res, err := riemann.Sum(square, unit, n, rule, riemann.WithoutRectangles())
			require.NoError(s.T(), err)
			e := math.Abs(res.Sum - 1.0/3.0)
			assert.Less(s.T(), e, prev, "rule %v n=%d", rule, n)
			prev = e
		}
		assert.Less(s.T(), prev, 1e-3, "rule %v at n=1000", rule)
	}
}

// TestFineResolution: Fine substitutes 1000 partitions and suppresses rectangles.
func (s *SumSuite) TestFineResolution() {
	res, err := riemann.Sum(double, unit, 3, riemann.Midpoint, riemann.WithResolution(sampler.Fine))
	require.NoError(s.T(), err)
	assert.Equal(s.T(), sampler.FineCount, res.Partitions)
	assert.Nil(s.T(), res.Rectangles)
	assert.InDelta(s.T(), 1.0, res.Sum, 1e-9)
}

// TestWithoutRectangles: the sum is unchanged when geometry is skipped.
func (s *SumSuite) TestWithoutRectangles() {
	with, err := riemann.Sum(square, unit, 50, riemann.Left)
	require.NoError(s.T(), err)
	without, err := riemann.Sum(square, unit, 50, riemann.Left, riemann.WithoutRectangles())
	require.NoError(s.T(), err)
	assert.Nil(s.T(), without.Rectangles)
	assert.Equal(s.T(), with.Sum, without.Sum)
}

// TestEvaluationFailure: 1/x hit at x=0 aborts by default and is skipped on request.
func (s *SumSuite) TestEvaluationFailure() {
	inv := func(x float64) float64 { return 1 / x }
	d := sampler.Domain{Lo: -1, Hi: 1}

	_, err := riemann.Sum(inv, d, 2, riemann.Left)
	require.ErrorIs(s.T(), err, sampler.ErrNonFinite)

	res, err := riemann.Sum(inv, d, 2, riemann.Left, riemann.WithSkipFailures())
	require.NoError(s.T(), err)
	require.Len(s.T(), res.Failures, 1)
	assert.Equal(s.T(), 0.0, res.Failures[0].X)
	assert.InDelta(s.T(), -1.0, res.Sum, 1e-12)
	assert.Len(s.T(), res.Rectangles, 1)
}

// TestInvalidParameters: zero partitions, bad rules and bad domains fail fast.
func (s *SumSuite) TestInvalidParameters() {
	_, err := riemann.Sum(square, unit, 0, riemann.Left)
	assert.ErrorIs(s.T(), err, riemann.ErrInvalidPartitions)
	_, err = riemann.Sum(square, unit, -5, riemann.Left)
	assert.ErrorIs(s.T(), err, riemann.ErrInvalidPartitions)
	_, err = riemann.Sum(square, unit, 4, riemann.Rule(9))
	assert.ErrorIs(s.T(), err, riemann.ErrUnknownRule)
	_, err = riemann.Sum(square, sampler.Domain{Lo: 1, Hi: 1}, 4, riemann.Left)
	assert.ErrorIs(s.T(), err, sampler.ErrInvalidDomain)
	_, err = riemann.Sum(nil, unit, 4, riemann.Left)
	assert.ErrorIs(s.T(), err, sampler.ErrNilFunc)
}

func TestSumSuite(t *testing.T) {
	suite.Run(t, new(SumSuite))
}

// TestParseRule covers names, aliases and text round-tripping.
func TestParseRule(t *testing.T) {
	for in, want := range map[string]riemann.Rule{
		"left": riemann.Left, "RIGHT": riemann.Right, " mid ": riemann.Midpoint, "midpoint": riemann.Midpoint,
	} {
		got, err := riemann.ParseRule(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := riemann.ParseRule("trapezoid")
	assert.ErrorIs(t, err, riemann.ErrUnknownRule)

	b, err := riemann.Midpoint.MarshalText()
	require.NoError(t, err)
	var r riemann.Rule
	require.NoError(t, r.UnmarshalText(b))
	assert.Equal(t, riemann.Midpoint, r)
	assert.Equal(t, "Rule(7)", riemann.Rule(7).String())
}

// TestFineResolution_ZeroPartitions: the count is validated before Fine replaces it.
func (s *SumSuite) TestFineResolution_ZeroPartitions() {
	for _, n := range []int{0, -3} {
		_, err := riemann.Sum(double, unit, n, riemann.Left, riemann.WithResolution(sampler.Fine))
		assert.ErrorIs(s.T(), err, riemann.ErrInvalidPartitions, "n=%d", n)
	}
}
