// SPDX-License-Identifier: MIT

package sampler

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "sampler: ..." so errors stay greppable once
// wrapped by riemann/measure/levelset callers. Match with errors.Is / errors.As.
var (
	// ErrInvalidDomain indicates non-finite bounds or Lo ≥ Hi where a positive width is required.
	ErrInvalidDomain = errors.New("sampler: invalid domain")

	// ErrInvalidSteps indicates a step or cell count below 1.
	ErrInvalidSteps = errors.New("sampler: step count must be >= 1")

	// ErrNilFunc indicates a nil Func was supplied.
	ErrNilFunc = errors.New("sampler: function is nil")

	// ErrEvaluation is the umbrella sentinel for any per-sample evaluation failure.
	ErrEvaluation = errors.New("sampler: evaluation failed")

	// ErrNonFinite marks an evaluation that produced NaN or ±Inf.
	ErrNonFinite = errors.New("sampler: non-finite value")
)

// EvalError reports the sample position at which evaluating the function failed.
// Value holds the offending result for non-finite values; Cause holds the
// recovered panic (as an error) when the function panicked.
type EvalError struct {
	X     float64
	Value float64
	Cause error
}

func (e *EvalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("sampler: evaluation failed at x=%g: %v", e.X, e.Cause)
	}

	return fmt.Sprintf("sampler: non-finite value %g at x=%g", e.Value, e.X)
}

// Is lets errors.Is match both ErrEvaluation and, for NaN/Inf results, ErrNonFinite.
func (e *EvalError) Is(target error) bool {
	if target == ErrEvaluation {
		return true
	}

	return target == ErrNonFinite && e.Cause == nil
}

// Unwrap exposes the recovered panic cause, if any.
func (e *EvalError) Unwrap() error { return e.Cause }
