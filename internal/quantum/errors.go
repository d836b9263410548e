package quantum

import (
	"errors"
	"fmt"
)

// Domain errors for solver operations.
var (
	// ErrInsufficientSamples indicates a quadrature call with too few points.
	ErrInsufficientSamples = errors.New("quantum: quadrature requires at least 3 samples")

	// ErrSingularSystem indicates tridiagonal elimination hit a degenerate
	// or non-finite pivot.
	ErrSingularSystem = errors.New("quantum: tridiagonal system is singular or non-finite")

	// ErrNotConverged indicates the energy bisection exhausted its iteration
	// budget before the bracket reached tolerance.
	ErrNotConverged = errors.New("quantum: eigensolver did not converge within iteration budget")

	// ErrDegenerateNorm indicates a zero or non-finite wavefunction norm.
	ErrDegenerateNorm = errors.New("quantum: wavefunction norm is zero or non-finite")

	// ErrDimensionMismatch indicates sequences whose lengths disagree with
	// the grid or with each other.
	ErrDimensionMismatch = errors.New("quantum: sequence length mismatch")
)

// StepError wraps an error with time-evolution context.
type StepError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
