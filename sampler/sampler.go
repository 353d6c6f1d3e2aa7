// SPDX-License-Identifier: MIT

package sampler

import (
	"fmt"
	"math"
)

// Sample returns steps+1 values evenly spaced from d.Lo to d.Hi inclusive.
//
// Algorithm:
//  1. Validate steps ≥ 1 and finite bounds with Lo ≤ Hi.
//  2. h = (Hi − Lo) / steps; v[i] = Lo + i·h.
//  3. Pin v[steps] = Hi so the endpoint carries no accumulated step error.
//
// A degenerate domain (Lo == Hi) yields steps+1 copies of Lo; h is 0 and
// nothing is divided by zero.
//
// Complexity: O(steps) time and memory.
func Sample(d Domain, steps int) ([]float64, error) {
	if steps < 1 {
		return nil, fmt.Errorf("Sample: %w (got %d)", ErrInvalidSteps, steps)
	}
	if !isFinite(d.Lo) || !isFinite(d.Hi) || d.Lo > d.Hi {
		return nil, fmt.Errorf("Sample: %w: %s", ErrInvalidDomain, d)
	}

	h := d.Width() / float64(steps)
	xs := make([]float64, steps+1)
	for i := 0; i < steps; i++ {
		xs[i] = d.Lo + float64(i)*h
	}
	xs[steps] = d.Hi

	return xs, nil
}

// Grid is a uniform partition of a domain into N cells of width Dx.
// Grids are values; copying one is cheap and safe.
type Grid struct {
	Domain Domain
	N      int
	Dx     float64
}

// Cells partitions d into n equal cells. It requires Lo < Hi and n ≥ 1.
func Cells(d Domain, n int) (Grid, error) {
	if n < 1 {
		return Grid{}, fmt.Errorf("Cells: %w (got %d)", ErrInvalidSteps, n)
	}
	if err := d.Validate(); err != nil {
		return Grid{}, fmt.Errorf("Cells: %w", err)
	}

	return Grid{Domain: d, N: n, Dx: d.Width() / float64(n)}, nil
}

// LeftEdge returns the left boundary of cell i.
func (g Grid) LeftEdge(i int) float64 {
	return g.Domain.Lo + float64(i)*g.Dx
}

// RightEdge returns the right boundary of cell i; the last cell ends exactly at Hi.
func (g Grid) RightEdge(i int) float64 {
	if i == g.N-1 {
		return g.Domain.Hi
	}

	return g.Domain.Lo + float64(i+1)*g.Dx
}

// Midpoint returns the center of cell i.
func (g Grid) Midpoint(i int) float64 {
	return g.Domain.Lo + (float64(i)+0.5)*g.Dx
}

// Eval calls fn at x and converts a panic or a NaN/±Inf result into *EvalError.
func Eval(fn Func, x float64) (y float64, err error) {
	if fn == nil {
		return 0, ErrNilFunc
	}

	defer func() {
		if r := recover(); r != nil {
			cause, ok := r.(error)
			if !ok {
				cause = fmt.Errorf("panic: %v", r)
			}
			y, err = 0, &EvalError{X: x, Value: math.NaN(), Cause: cause}
		}
	}()

	y = fn(x)
	if !isFinite(y) {
		return 0, &EvalError{X: x, Value: y}
	}

	return y, nil
}

// Polyline evaluates fn at the steps+1 points of Sample(d, steps).
// The first failing sample aborts and is returned as *EvalError.
func Polyline(fn Func, d Domain, steps int) ([]Point, error) {
	if fn == nil {
		return nil, ErrNilFunc
	}
	xs, err := Sample(d, steps)
	if err != nil {
		return nil, err
	}

	pts := make([]Point, len(xs))
	for i, x := range xs {
		y, err := Eval(fn, x)
		if err != nil {
			return nil, err
		}
		pts[i] = Point{X: x, Y: y}
	}

	return pts, nil
}

// Values evaluates fn at the left edge of every cell of g, in order.
// It is the shared scan input of the measure and level-set engines.
func Values(fn Func, g Grid) ([]float64, error) {
	if fn == nil {
		return nil, ErrNilFunc
	}

	ys := make([]float64, g.N)
	for i := range ys {
		y, err := Eval(fn, g.LeftEdge(i))
		if err != nil {
			return nil, err
		}
		ys[i] = y
	}

	return ys, nil
}
