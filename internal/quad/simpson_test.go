package quad

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schrod/internal/quantum"
)

func sample(f func(float64) float64, x0, h float64, n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = f(x0 + float64(i)*h)
	}
	return s
}

func TestSimpsonConstant(t *testing.T) {
	h := 0.1
	f := sample(func(float64) float64 { return 2.5 }, 0, h, 101)

	got, err := Simpson(h, f)
	require.NoError(t, err)

	// c · (N-1) · h for an odd sample count
	assert.InDelta(t, 2.5*100*h, got, 1e-12)
}

func TestSimpsonQuadraticExact(t *testing.T) {
	// Simpson's rule is exact for polynomials up to degree 3.
	h := 0.01
	f := sample(func(x float64) float64 { return x * x }, 0, h, 201)

	got, err := Simpson(h, f)
	require.NoError(t, err)

	L := 2.0
	assert.InDelta(t, L*L*L/3, got, 1e-12)
}

func TestSimpsonCubicExact(t *testing.T) {
	h := 0.05
	f := sample(func(x float64) float64 { return x*x*x - x }, -1, h, 41)

	got, err := Simpson(h, f)
	require.NoError(t, err)

	// Odd integrand over a symmetric interval.
	assert.InDelta(t, 0, got, 1e-12)
}

func TestSimpsonEvenCountDropsLastSample(t *testing.T) {
	h := 0.1
	odd := sample(func(float64) float64 { return 1 }, 0, h, 11)
	even := append(sample(func(float64) float64 { return 1 }, 0, h, 11), 1)

	a, err := Simpson(h, odd)
	require.NoError(t, err)
	b, err := Simpson(h, even)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestSimpsonInsufficientSamples(t *testing.T) {
	_, err := Simpson(0.1, []float64{1, 2})
	assert.ErrorIs(t, err, quantum.ErrInsufficientSamples)

	_, err = Simpson(0.1, nil)
	assert.ErrorIs(t, err, quantum.ErrInsufficientSamples)
}

func TestNormalize(t *testing.T) {
	g := quantum.NewGrid(0, 1, 100)
	psi := make(quantum.Wavefunction, g.Len())
	for i, x := range g.X {
		psi[i] = 3 * math.Sin(math.Pi*x)
	}

	out, err := Normalize(psi, g.Dx)
	require.NoError(t, err)

	// Input untouched.
	assert.InDelta(t, 3*math.Sin(math.Pi*g.X[1]), psi[1], 1e-12)

	sq := make([]float64, len(out))
	for i, v := range out {
		sq[i] = v * v
	}
	norm, err := Simpson(g.Dx, sq)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, norm, 1e-9)
}

func TestNormalizeDegenerate(t *testing.T) {
	zero := make(quantum.Wavefunction, 11)
	_, err := Normalize(zero, 0.1)
	assert.ErrorIs(t, err, quantum.ErrDegenerateNorm)

	bad := quantum.Wavefunction{0, math.Inf(1), 0, 0, 0}
	_, err = Normalize(bad, 0.1)
	assert.ErrorIs(t, err, quantum.ErrDegenerateNorm)
}

func TestNormalizePacket(t *testing.T) {
	g := quantum.NewGrid(-10, 10, 400)
	p := quantum.NewGaussianPacket(g, 0, 1, 3)

	out, err := NormalizePacket(p, g.Dx)
	require.NoError(t, err)

	norm, err := Simpson(g.Dx, out.Density())
	require.NoError(t, err)
	assert.InDelta(t, 1.0, norm, 1e-9)
}

func TestNormalizePacketMismatch(t *testing.T) {
	p := quantum.Packet{Re: make(quantum.Wavefunction, 5), Im: make(quantum.Wavefunction, 4)}
	_, err := NormalizePacket(p, 0.1)
	assert.ErrorIs(t, err, quantum.ErrDimensionMismatch)
}
