// Package quantum provides core primitives for one-dimensional
// Schrödinger solvers.
//
// The package defines the shared value types and error taxonomy used by
// both solver regimes:
//
//   - [Grid]: uniform spatial discretization
//   - [Wavefunction]: real-valued stationary-state amplitudes
//   - [Packet]: complex wavefunction as a real/imaginary pair
//   - [Params]: explicit physical constants (ħ, mass)
//   - [Bracket]: energy interval narrowed by the eigensolver
//
// # Example
//
//	g := quantum.NewGrid(-1.4, 1.4, 280)
//	v := potential.Sample(potential.SquareWell(-1, 1, -1), g)
//	res, _ := shoot.Solve(p.Mhdx2(g.Dx), v, shoot.DefaultSeed(), 0, 1000)
//
// # Thread Safety
//
// All types are plain values. Solver calls never mutate their inputs, so
// distinct calls may run concurrently over shared grids and potentials.
package quantum
