// Package shoot finds bound-state eigenpairs of a static potential by the
// shooting method.
//
// A trial wavefunction is propagated across the grid by a three-term
// finite-difference recursion and the number of sign changes it picks up
// acts as the search signal: bisection on the energy bracket converges on
// the eigenstate with exactly the requested node count.
//
// Propagation of trial energies far from an eigenvalue grows or decays
// rapidly. That instability is the mechanism the search exploits, not a
// failure mode.
package shoot
