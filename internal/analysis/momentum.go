package analysis

import (
	"math"

	"github.com/mjibson/go-dsp/fft"

	"schrod/internal/quantum"
)

// MomentumDensity transforms a packet to momentum space and returns the
// momentum grid alongside |phi(p)|², ordered from most negative to most
// positive momentum. Samples are zero-padded to the next power of two for
// the FFT; the result is normalized so the returned density sums to the
// packet's total probability under trapezoidal weighting.
func MomentumDensity(p quantum.Packet, dx, hbar float64) (ps, density []float64) {
	n := 1
	for n < len(p.Re) {
		n <<= 1
	}
	in := make([]complex128, n)
	for i := range p.Re {
		in[i] = complex(p.Re[i], p.Im[i])
	}

	out := fft.FFT(in)

	dp := 2 * math.Pi * hbar / (float64(n) * dx)
	ps = make([]float64, n)
	density = make([]float64, n)
	scale := dx * dx / (2 * math.Pi * hbar)
	for i := 0; i < n; i++ {
		// FFT bins wrap: indices above n/2 hold negative momenta.
		k := i
		if i >= n/2 {
			k = i - n
		}
		idx := i + n/2
		if idx >= n {
			idx -= n
		}
		ps[idx] = float64(k) * dp
		mag := real(out[i])*real(out[i]) + imag(out[i])*imag(out[i])
		density[idx] = mag * scale
	}
	return ps, density
}

// MeanMomentum is the expectation value of momentum for a normalized
// packet, from the first moment of its momentum density.
func MeanMomentum(p quantum.Packet, dx, hbar float64) float64 {
	ps, density := MomentumDensity(p, dx, hbar)
	if len(ps) < 2 {
		return 0
	}
	dp := ps[1] - ps[0]
	mean := 0.0
	for i := range ps {
		mean += ps[i] * density[i] * dp
	}
	return mean
}
