package shoot

import (
	"fmt"

	"schrod/internal/quantum"
)

// Tolerance is the bracket width, in grid-scaled energy units, below which
// the bisection is considered converged.
const Tolerance = 1e-6

// Seed holds the boundary samples anchoring each propagation: psi[0],
// psi[1] on the launch side and the desired terminal value at the far edge.
type Seed struct {
	Psi0, Psi1, PsiN float64
}

// DefaultSeed launches a small rising amplitude from a pinned left edge
// toward a pinned right edge.
func DefaultSeed() Seed { return Seed{Psi0: 0, Psi1: 1e-4, PsiN: 0} }

// Result is one converged eigenpair.
type Result struct {
	Number     int
	Energy     float64
	Psi        quantum.Wavefunction
	Iterations int
}

// Solve bisects over the default bracket [min v, max v]. See SolveBracket.
func Solve(mhdx2 float64, v []float64, seed Seed, target, maxIter int) (Result, error) {
	return SolveBracket(mhdx2, v, seed, quantum.DefaultBracket(v), target, maxIter)
}

// SolveBracket finds the eigenstate whose propagated wavefunction has
// exactly target interior sign changes, bisecting energy inside bracket.
//
// Node counting spans samples 1 through n-3, i.e. the pairs (i, i+1) for
// 1 <= i <= n-4: the samples nearest the far edge sit where the diverging
// tail of an off-eigenvalue trial would register spurious crossings, so
// they are excluded. The same window applies on every iteration.
//
// When the observed node count already matches the target, the sign of the
// terminal mismatch (propagated value at the far edge against the desired
// terminal value, corrected for the tail parity of the target state)
// discriminates trials above the eigenvalue from trials below it.
//
// Each call is independent: no state persists across calls, so distinct
// quantum numbers may be solved concurrently.
func SolveBracket(mhdx2 float64, v []float64, seed Seed, bracket quantum.Bracket, target, maxIter int) (Result, error) {
	n := len(v)
	if n < 5 {
		return Result{}, fmt.Errorf("%w: potential has %d samples", quantum.ErrDimensionMismatch, n)
	}
	if target < 0 {
		return Result{}, fmt.Errorf("%w: negative quantum number %d", quantum.ErrNotConverged, target)
	}
	if bracket.Width() <= 0 {
		return Result{}, fmt.Errorf("%w: degenerate bracket [%g, %g]", quantum.ErrNotConverged, bracket.Lo, bracket.Hi)
	}

	base := make(quantum.Wavefunction, n)
	base[0] = seed.Psi0
	base[1] = seed.Psi1
	base[n-1] = seed.PsiN

	parity := tailParity(seed, target)

	lo, hi := bracket.Lo, bracket.Hi
	for it := 1; it <= maxIter; it++ {
		mid := 0.5 * (lo + hi)
		psi := Propagate(mhdx2, v, mid, base)

		nodes := psi.Nodes(1, n-3)
		switch {
		case nodes > target:
			hi = mid
		case nodes < target:
			lo = mid
		default:
			mismatch := psi[n-1] - seed.PsiN
			if mismatch*parity > 0 {
				lo = mid
			} else {
				hi = mid
			}
		}

		// Width alone is not enough: a target absent from the bracket
		// narrows it onto an edge without ever matching the node count.
		if hi-lo < Tolerance && nodes == target {
			return Result{
				Number:     target,
				Energy:     0.5 * (lo + hi),
				Psi:        psi,
				Iterations: it,
			}, nil
		}
	}
	return Result{}, fmt.Errorf("%w: state %d after %d iterations (bracket width %g)",
		quantum.ErrNotConverged, target, maxIter, hi-lo)
}

// tailParity gives the sign the propagated tail diverges with when the
// trial energy sits below the target eigenvalue: the launch direction
// flipped once per node of the target state.
func tailParity(seed Seed, target int) float64 {
	dir := 1.0
	if seed.Psi1 < 0 || (seed.Psi1 == 0 && seed.Psi0 < 0) {
		dir = -1
	}
	if target%2 == 1 {
		dir = -dir
	}
	return dir
}
