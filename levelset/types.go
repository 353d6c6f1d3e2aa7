// SPDX-License-Identifier: MIT

package levelset

import "errors"

var (
	// ErrInvalidLevels indicates a band count below 1.
	ErrInvalidLevels = errors.New("levelset: levelCount must be >= 1")

	// ErrInvalidRange indicates a value range that is not finite with Lo < Hi.
	ErrInvalidRange = errors.New("levelset: invalid value range")

	// ErrInvalidHeight indicates a probe with non-finite t or non-positive dt.
	ErrInvalidHeight = errors.New("levelset: probe height must be finite and dt > 0")

	// ErrInvalidSamples indicates an x-resolution below 1.
	ErrInvalidSamples = errors.New("levelset: samples must be >= 1")

	// ErrInvalidTolerance indicates a negative or non-finite band tolerance.
	ErrInvalidTolerance = errors.New("levelset: tolerance must be finite and >= 0")
)

// Segment is the half-open x-interval [Start, End) of one merged run; Start < End.
type Segment struct {
	Start float64 `json:"start" yaml:"start"`
	End   float64 `json:"end" yaml:"end"`
}

// Length returns End − Start.
func (s Segment) Length() float64 { return s.End - s.Start }

// Slice is one horizontal band [YBase, YBase+Height) and where f lies in it.
// Segments are ordered, non-overlapping and increasing in x. Measure is the
// in-band sample count times dx and matches the total segment length.
type Slice struct {
	YBase    float64   `json:"yBase" yaml:"yBase"`
	Height   float64   `json:"height" yaml:"height"`
	Segments []Segment `json:"segments" yaml:"segments"`
	Measure  float64   `json:"measure" yaml:"measure"`
}

// Length returns Σ(End − Start) over the segments.
func (s Slice) Length() float64 {
	var total float64
	for _, seg := range s.Segments {
		total += seg.Length()
	}

	return total
}

// Contains reports whether x lies in one of the segments.
func (s Slice) Contains(x float64) bool {
	for _, seg := range s.Segments {
		if x >= seg.Start && x < seg.End {
			return true
		}
	}

	return false
}

// Clone returns a deep copy of s.
func (s Slice) Clone() Slice {
	c := s
	if s.Segments != nil {
		c.Segments = make([]Segment, len(s.Segments))
		copy(c.Segments, s.Segments)
	}

	return c
}
