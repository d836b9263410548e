package analysis

import (
	"fmt"

	"schrod/internal/quad"
	"schrod/internal/quantum"
)

// Moment integrates x^k·density over the grid.
func Moment(g quantum.Grid, density []float64, k int) (float64, error) {
	if len(density) != g.Len() {
		return 0, fmt.Errorf("%w: density %d, grid %d", quantum.ErrDimensionMismatch, len(density), g.Len())
	}
	f := make([]float64, len(density))
	for i, d := range density {
		xk := 1.0
		for j := 0; j < k; j++ {
			xk *= g.X[i]
		}
		f[i] = xk * d
	}
	return quad.Simpson(g.Dx, f)
}

// MeanX is the position expectation value of a density assumed normalized.
func MeanX(g quantum.Grid, density []float64) (float64, error) {
	return Moment(g, density, 1)
}

// SpreadX is the variance ⟨x²⟩-⟨x⟩² of a normalized density.
func SpreadX(g quantum.Grid, density []float64) (float64, error) {
	m1, err := Moment(g, density, 1)
	if err != nil {
		return 0, err
	}
	m2, err := Moment(g, density, 2)
	if err != nil {
		return 0, err
	}
	return m2 - m1*m1, nil
}

// Energy is the expectation ⟨psi|H|psi⟩ of a real normalized stationary
// wavefunction under potential v, using the centered second difference for
// the kinetic term. The two boundary samples contribute no kinetic term.
func Energy(p quantum.Params, g quantum.Grid, v []float64, psi quantum.Wavefunction) (float64, error) {
	n := g.Len()
	if len(psi) != n || len(v) != n {
		return 0, fmt.Errorf("%w: psi %d, v %d, grid %d", quantum.ErrDimensionMismatch, len(psi), len(v), n)
	}
	coeff := p.Hbar * p.Hbar / (2 * p.Mass * g.Dx * g.Dx)
	f := make([]float64, n)
	for i := 1; i < n-1; i++ {
		kinetic := -coeff * (psi[i+1] - 2*psi[i] + psi[i-1])
		f[i] = psi[i] * (kinetic + v[i]*psi[i])
	}
	f[0] = psi[0] * v[0] * psi[0]
	f[n-1] = psi[n-1] * v[n-1] * psi[n-1]
	return quad.Simpson(g.Dx, f)
}
