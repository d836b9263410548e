package quantum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	g := NewGrid(-1.4, 1.4, 280)

	require.Equal(t, 281, g.Len())
	assert.InDelta(t, 0.01, g.Dx, 1e-12)
	assert.InDelta(t, -1.4, g.X[0], 1e-12)
	assert.InDelta(t, 1.4, g.X[280], 1e-12)

	for i := 1; i < g.Len(); i++ {
		assert.InDelta(t, g.Dx, g.X[i]-g.X[i-1], 1e-12)
	}
}

func TestWavefunctionClone(t *testing.T) {
	w := Wavefunction{1, 2, 3}
	c := w.Clone()
	c[0] = 9

	assert.Equal(t, 1.0, w[0])
}

func TestWavefunctionNodes(t *testing.T) {
	cases := []struct {
		name   string
		w      Wavefunction
		lo, hi int
		want   int
	}{
		{"NoNodes", Wavefunction{0, 1, 2, 1, 0.5, 0}, 1, 4, 0},
		{"OneNode", Wavefunction{0, 1, 0.5, -0.5, -1, 0}, 1, 4, 1},
		{"Alternating", Wavefunction{0, 1, -1, 1, -1, 0}, 1, 4, 3},
		{"ZeroNotCounted", Wavefunction{0, 1, 0, 1, 1, 0}, 1, 4, 0},
		{"WindowExcludesEdges", Wavefunction{1, -1, 1, 1, 1, -1}, 1, 4, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.w.Nodes(tc.lo, tc.hi))
		})
	}
}

func TestPacketDensityAndComplex(t *testing.T) {
	p := Packet{Re: Wavefunction{1, 0, 3}, Im: Wavefunction{0, 2, 4}}

	d := p.Density()
	assert.Equal(t, []float64{1, 4, 25}, d)

	c := p.Complex()
	require.Len(t, c, 3)
	assert.Equal(t, complex(3.0, 4.0), c[2])

	back := PacketFromComplex(c)
	assert.Equal(t, p.Re, back.Re)
	assert.Equal(t, p.Im, back.Im)
}

func TestPacketIsFinite(t *testing.T) {
	p := Packet{Re: Wavefunction{1, 2}, Im: Wavefunction{0, 0}}
	assert.True(t, p.IsFinite())

	p.Im[1] = math.NaN()
	assert.False(t, p.IsFinite())
}

func TestNewGaussianPacketPinsEdges(t *testing.T) {
	g := NewGrid(-10, 10, 200)
	p := NewGaussianPacket(g, 0, 1, 5)

	assert.Zero(t, p.Re[0])
	assert.Zero(t, p.Im[0])
	assert.Zero(t, p.Re[g.Len()-1])
	assert.Zero(t, p.Im[g.Len()-1])

	mid := g.Len() / 2
	assert.Greater(t, p.Re[mid]*p.Re[mid]+p.Im[mid]*p.Im[mid], 0.5)
}

func TestMhdx2(t *testing.T) {
	p := Params{Hbar: 2, Mass: 3}
	assert.InDelta(t, 3*0.01/(4.0), p.Mhdx2(0.1), 1e-15)
}

func TestDefaultBracket(t *testing.T) {
	b := DefaultBracket([]float64{0, -1, -1, 0})
	assert.Equal(t, Bracket{Lo: -1, Hi: 0}, b)
	assert.InDelta(t, -0.5, b.Mid(), 1e-15)
	assert.InDelta(t, 1.0, b.Width(), 1e-15)
}
