package shoot

import "schrod/internal/quantum"

// Propagate extends a seeded wavefunction across the grid for trial energy
// E. Indices 0 and 1 of seed anchor the recursion; every index from 2 to
// the end is overwritten by
//
//	psi[i] = 2*(mhdx2*(v[i]-E)+1)*psi[i-1] - psi[i-2]
//
// the second-order finite-difference form of the stationary equation, with
// mhdx2 = m·dx²/ħ². The seed is not modified; a fresh sequence is returned
// for every trial.
func Propagate(mhdx2 float64, v []float64, energy float64, seed quantum.Wavefunction) quantum.Wavefunction {
	psi := seed.Clone()
	for i := 2; i < len(psi); i++ {
		psi[i] = 2*(mhdx2*(v[i]-energy)+1)*psi[i-1] - psi[i-2]
	}
	return psi
}
