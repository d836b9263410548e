// Package quad implements composite Simpson quadrature and the
// wavefunction normalization built on it.
package quad

import (
	"fmt"
	"math"

	"schrod/internal/quantum"
)

// Simpson estimates the definite integral of a uniformly sampled function
// with step h using composite Simpson's rule. An even sample count leaves
// an odd interval count, which the rule cannot cover; the last sample is
// then dropped so the largest odd prefix is integrated instead. The
// truncation is a deliberate approximation, not an error.
func Simpson(h float64, f []float64) (float64, error) {
	if len(f) < 3 {
		return 0, fmt.Errorf("%w: got %d", quantum.ErrInsufficientSamples, len(f))
	}
	n := len(f)
	if n%2 == 0 {
		n--
	}
	sum := f[0] + f[n-1]
	for i := 1; i < n-1; i++ {
		if i%2 == 1 {
			sum += 4 * f[i]
		} else {
			sum += 2 * f[i]
		}
	}
	return sum * h / 3, nil
}

// Normalize scales a stationary wavefunction so its Simpson-integrated
// squared amplitude is 1. The input is not modified.
func Normalize(psi quantum.Wavefunction, dx float64) (quantum.Wavefunction, error) {
	sq := make([]float64, len(psi))
	for i, v := range psi {
		sq[i] = v * v
	}
	norm, err := Simpson(dx, sq)
	if err != nil {
		return nil, err
	}
	if norm <= 0 || math.IsNaN(norm) || math.IsInf(norm, 0) {
		return nil, fmt.Errorf("%w: norm=%g", quantum.ErrDegenerateNorm, norm)
	}
	scale := 1 / math.Sqrt(norm)
	out := psi.Clone()
	for i := range out {
		out[i] *= scale
	}
	return out, nil
}

// NormalizePacket scales a complex wavefunction so the integral of
// re²+im² is 1. The input is not modified.
func NormalizePacket(p quantum.Packet, dx float64) (quantum.Packet, error) {
	if len(p.Re) != len(p.Im) {
		return quantum.Packet{}, fmt.Errorf("%w: re=%d im=%d", quantum.ErrDimensionMismatch, len(p.Re), len(p.Im))
	}
	norm, err := Simpson(dx, p.Density())
	if err != nil {
		return quantum.Packet{}, err
	}
	if norm <= 0 || math.IsNaN(norm) || math.IsInf(norm, 0) {
		return quantum.Packet{}, fmt.Errorf("%w: norm=%g", quantum.ErrDegenerateNorm, norm)
	}
	scale := 1 / math.Sqrt(norm)
	out := p.Clone()
	for i := range out.Re {
		out.Re[i] *= scale
		out.Im[i] *= scale
	}
	return out, nil
}
