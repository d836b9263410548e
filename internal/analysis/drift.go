package analysis

import (
	"math"

	"schrod/internal/evolve"
	"schrod/internal/quad"
	"schrod/internal/quantum"
)

// NormDrift tracks how far the total probability wanders from its initial
// value across an evolution run. Crank-Nicolson is unitary in exact
// arithmetic, so the observed drift measures accumulated roundoff.
type NormDrift struct {
	dx       float64
	initial  float64
	current  float64
	maxDrift float64
	samples  int
}

func NewNormDrift(dx float64) *NormDrift {
	return &NormDrift{dx: dx}
}

func (n *NormDrift) Name() string { return "norm_drift" }

// Observe satisfies the evolve.Observer signature.
func (n *NormDrift) Observe(f evolve.Frame) {
	norm, err := quad.Simpson(n.dx, f.Psi.Density())
	if err != nil {
		return
	}

	if n.samples == 0 {
		n.initial = norm
	}
	n.current = norm
	n.samples++

	if n.initial != 0 {
		drift := math.Abs(norm-n.initial) / math.Abs(n.initial)
		n.maxDrift = math.Max(n.maxDrift, drift)
	}
}

func (n *NormDrift) Value() float64 { return n.maxDrift }

func (n *NormDrift) Current() float64 { return n.current }

func (n *NormDrift) Reset() {
	n.initial = 0
	n.current = 0
	n.maxDrift = 0
	n.samples = 0
}

// Probability integrates a packet's density over the grid.
func Probability(p quantum.Packet, dx float64) (float64, error) {
	return quad.Simpson(dx, p.Density())
}
