// Package analysis computes derived quantities from solved wavefunctions:
// position-space moments, energy expectation values, momentum-space
// densities and norm drift across a time-evolution run.
package analysis
