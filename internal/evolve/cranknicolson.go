// Package evolve advances a wave packet in time under a static potential
// with the Crank-Nicolson implicit finite-difference scheme.
package evolve

import (
	"fmt"

	"schrod/internal/quantum"
	"schrod/internal/tridiag"
)

// Stepper advances a complex wavefunction by one implicit time step.
//
// Per step it applies the explicit operator B to the current wavefunction
// and solves A·psi_new = B·psi with the tridiagonal solver, where A and B
// average the spatial operator at the current and next step. The scheme is
// unconditionally stable and, in exact arithmetic, unitary, so explicit
// steppers have no place in oscillatory quantum dynamics.
//
// The potential is static, so both operators are assembled once at
// construction. A Stepper is not safe for concurrent use; time steps are
// inherently sequential anyway, each consuming the previous step's output.
type Stepper struct {
	n     int
	alpha float64
	gamma []float64

	// Implicit-side operator, boundary rows pinned to identity.
	aSub, aDiag, aSup []complex128

	rhs []complex128
}

// NewStepper builds the operators for grid spacing dx and time step dt.
func NewStepper(p quantum.Params, v []float64, dx, dt float64) *Stepper {
	n := len(v)
	s := &Stepper{
		n:     n,
		alpha: p.Hbar * dt / (4 * p.Mass * dx * dx),
		gamma: make([]float64, n),
		aSub:  make([]complex128, n-1),
		aDiag: make([]complex128, n),
		aSup:  make([]complex128, n-1),
		rhs:   make([]complex128, n),
	}
	for i, vi := range v {
		s.gamma[i] = 2*s.alpha + dt/(2*p.Hbar)*vi
	}

	for i := 1; i < n-1; i++ {
		s.aDiag[i] = complex(s.gamma[i], -1)
		s.aSub[i-1] = complex(s.alpha, 0)
		s.aSup[i] = complex(s.alpha, 0)
	}

	// Dirichlet boundary: identity rows pin the wavefunction at the edges.
	s.aDiag[0] = 1
	s.aDiag[n-1] = 1
	s.aSup[0] = 0
	s.aSub[n-2] = 0

	return s
}

// Step advances psi by one time step, returning a new Packet. The input is
// not mutated; a step either completes or fails atomically.
func (s *Stepper) Step(p quantum.Packet) (quantum.Packet, error) {
	if len(p.Re) != s.n || len(p.Im) != s.n {
		return quantum.Packet{}, fmt.Errorf("%w: packet %d/%d, operator %d",
			quantum.ErrDimensionMismatch, len(p.Re), len(p.Im), s.n)
	}

	psi := p.Complex()

	// Explicit side: rhs = B·psi with identity boundary rows.
	s.rhs[0] = psi[0]
	s.rhs[s.n-1] = psi[s.n-1]
	for i := 1; i < s.n-1; i++ {
		s.rhs[i] = complex(-s.gamma[i], -1)*psi[i] -
			complex(s.alpha, 0)*(psi[i-1]+psi[i+1])
	}

	out, err := tridiag.Solve(s.aSub, s.aDiag, s.aSup, s.rhs)
	if err != nil {
		return quantum.Packet{}, err
	}
	return quantum.PacketFromComplex(out), nil
}
