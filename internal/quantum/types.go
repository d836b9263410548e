package quantum

import "math"

// Grid is a uniform spatial discretization of [X[0], X[len-1]].
type Grid struct {
	X  []float64
	Dx float64
}

// NewGrid divides [x0, x1] into steps intervals, producing steps+1 points.
func NewGrid(x0, x1 float64, steps int) Grid {
	if steps < 2 {
		steps = 2
	}
	dx := (x1 - x0) / float64(steps)
	x := make([]float64, steps+1)
	for i := range x {
		x[i] = x0 + float64(i)*dx
	}
	return Grid{X: x, Dx: dx}
}

func (g Grid) Len() int { return len(g.X) }

// Wavefunction holds real amplitudes, one per grid point.
type Wavefunction []float64

func (w Wavefunction) Clone() Wavefunction {
	c := make(Wavefunction, len(w))
	copy(c, w)
	return c
}

func (w Wavefunction) IsFinite() bool {
	for _, v := range w {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Nodes counts sign changes between consecutive samples over the index
// pairs (i, i+1) for i in [lo, hi). Exact zeros do not count as changes.
func (w Wavefunction) Nodes(lo, hi int) int {
	if lo < 0 {
		lo = 0
	}
	if hi > len(w)-1 {
		hi = len(w) - 1
	}
	n := 0
	for i := lo; i < hi; i++ {
		if w[i]*w[i+1] < 0 {
			n++
		}
	}
	return n
}

// Packet is a complex wavefunction stored as separate real and imaginary
// amplitude sequences, index-aligned with a Grid.
type Packet struct {
	Re, Im Wavefunction
}

func (p Packet) Clone() Packet {
	return Packet{Re: p.Re.Clone(), Im: p.Im.Clone()}
}

func (p Packet) IsFinite() bool {
	return p.Re.IsFinite() && p.Im.IsFinite()
}

// Density returns |psi|^2 per grid point.
func (p Packet) Density() []float64 {
	d := make([]float64, len(p.Re))
	for i := range d {
		d[i] = p.Re[i]*p.Re[i] + p.Im[i]*p.Im[i]
	}
	return d
}

// Complex packs the pair into a single complex sequence.
func (p Packet) Complex() []complex128 {
	c := make([]complex128, len(p.Re))
	for i := range c {
		c[i] = complex(p.Re[i], p.Im[i])
	}
	return c
}

// PacketFromComplex splits a complex sequence into a Packet.
func PacketFromComplex(c []complex128) Packet {
	p := Packet{Re: make(Wavefunction, len(c)), Im: make(Wavefunction, len(c))}
	for i, v := range c {
		p.Re[i] = real(v)
		p.Im[i] = imag(v)
	}
	return p
}

// NewGaussianPacket builds a Gaussian envelope centered at x0 with width
// sigma, modulated by a plane wave of wavenumber k0. The envelope is left
// unnormalized; callers normalize via the quadrature package.
func NewGaussianPacket(g Grid, x0, sigma, k0 float64) Packet {
	p := Packet{
		Re: make(Wavefunction, g.Len()),
		Im: make(Wavefunction, g.Len()),
	}
	for i, x := range g.X {
		env := math.Exp(-(x - x0) * (x - x0) / (2 * sigma * sigma))
		p.Re[i] = env * math.Cos(k0*x)
		p.Im[i] = env * math.Sin(k0*x)
	}
	// Dirichlet edges: the time stepper pins the first and last samples.
	p.Re[0], p.Im[0] = 0, 0
	p.Re[g.Len()-1], p.Im[g.Len()-1] = 0, 0
	return p
}

// Params carries the physical constants every solver call needs. There is
// no package-level default state; callers pass Params explicitly.
type Params struct {
	Hbar float64
	Mass float64
}

// DefaultParams returns natural units (ħ = m = 1).
func DefaultParams() Params { return Params{Hbar: 1, Mass: 1} }

// Mhdx2 folds mass and grid spacing into the single coefficient
// m·dx²/ħ² used by the stationary recursion.
func (p Params) Mhdx2(dx float64) float64 {
	return p.Mass * dx * dx / (p.Hbar * p.Hbar)
}

// Bracket is an energy interval known to contain the target eigenvalue.
type Bracket struct {
	Lo, Hi float64
}

func (b Bracket) Width() float64 { return b.Hi - b.Lo }
func (b Bracket) Mid() float64   { return 0.5 * (b.Lo + b.Hi) }

// DefaultBracket spans the sampled potential range. Potentials unbounded
// below need a caller-supplied bracket instead.
func DefaultBracket(v []float64) Bracket {
	if len(v) == 0 {
		return Bracket{}
	}
	lo, hi := v[0], v[0]
	for _, val := range v[1:] {
		lo = math.Min(lo, val)
		hi = math.Max(hi, val)
	}
	return Bracket{Lo: lo, Hi: hi}
}
