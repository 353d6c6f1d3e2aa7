// SPDX-License-Identifier: MIT

package levelset

import "github.com/katalvlaran/lvlset/sampler"

// runState is the state of the left-to-right scan.
type runState uint8

const (
	outside runState = iota
	inside
)

// scan is the fold accumulator: current state, open-run start, hit count and
// the segments emitted so far.
type scan struct {
	grid     sampler.Grid
	state    runState
	start    float64
	hits     int
	segments []Segment
}

// step consumes sample i with predicate outcome hit.
//
//	outside --hit--> inside   record start = x_i
//	inside  --miss-> outside  emit [start, x_i)
func (s scan) step(i int, hit bool) scan {
	x := s.grid.LeftEdge(i)
	switch {
	case hit && s.state == outside:
		s.state, s.start = inside, x
	case !hit && s.state == inside:
		s.state = outside
		s.segments = append(s.segments, Segment{Start: s.start, End: x})
	}
	if hit {
		s.hits++
	}

	return s
}

// finish closes a run still open after the last sample at the domain's Hi.
func (s scan) finish() scan {
	if s.state == inside {
		s.state = outside
		s.segments = append(s.segments, Segment{Start: s.start, End: s.grid.Domain.Hi})
	}

	return s
}

// mergeRuns folds the predicate over ys and returns the merged segments and
// the measure hits·dx. Zero hits yield an empty (non-nil) segment list.
func mergeRuns(g sampler.Grid, ys []float64, in func(y float64) bool) ([]Segment, float64) {
	acc := scan{grid: g, segments: []Segment{}}
	for i, y := range ys {
		acc = acc.step(i, in(y))
	}
	acc = acc.finish()

	return acc.segments, float64(acc.hits) * g.Dx
}
