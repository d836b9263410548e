package evolve

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schrod/internal/quad"
	"schrod/internal/quantum"
)

func freePacket(t *testing.T) (quantum.Grid, []float64, quantum.Packet) {
	t.Helper()
	g := quantum.NewGrid(-20, 20, 800)
	v := make([]float64, g.Len())
	p, err := quad.NormalizePacket(quantum.NewGaussianPacket(g, -5, 1, 2), g.Dx)
	require.NoError(t, err)
	return g, v, p
}

func probability(p quantum.Packet, dx float64) float64 {
	total := 0.0
	for _, d := range p.Density() {
		total += d * dx
	}
	return total
}

func TestStepPreservesNorm(t *testing.T) {
	g, v, p := freePacket(t)
	st := NewStepper(quantum.DefaultParams(), v, g.Dx, 0.002)

	initial := probability(p, g.Dx)
	for i := 0; i < 500; i++ {
		next, err := st.Step(p)
		require.NoError(t, err)
		p = next
	}

	assert.InDelta(t, initial, probability(p, g.Dx), 1e-8,
		"Crank-Nicolson must be unitary over many steps")
}

func TestStepNormUnderPotential(t *testing.T) {
	g := quantum.NewGrid(-20, 20, 800)
	v := make([]float64, g.Len())
	for i, x := range g.X {
		v[i] = 0.5 * x * x
	}
	p, err := quad.NormalizePacket(quantum.NewGaussianPacket(g, -3, 1, 0), g.Dx)
	require.NoError(t, err)

	st := NewStepper(quantum.DefaultParams(), v, g.Dx, 0.002)
	initial := probability(p, g.Dx)
	for i := 0; i < 300; i++ {
		p, err = st.Step(p)
		require.NoError(t, err)
	}

	assert.InDelta(t, initial, probability(p, g.Dx), 1e-8)
}

func TestStepPinsBoundaries(t *testing.T) {
	g, v, p := freePacket(t)
	st := NewStepper(quantum.DefaultParams(), v, g.Dx, 0.002)

	for i := 0; i < 100; i++ {
		next, err := st.Step(p)
		require.NoError(t, err)
		p = next
	}

	assert.Zero(t, p.Re[0])
	assert.Zero(t, p.Im[0])
	assert.Zero(t, p.Re[g.Len()-1])
	assert.Zero(t, p.Im[g.Len()-1])
}

func TestStepDoesNotMutateInput(t *testing.T) {
	g, v, p := freePacket(t)
	st := NewStepper(quantum.DefaultParams(), v, g.Dx, 0.002)

	before := p.Clone()
	_, err := st.Step(p)
	require.NoError(t, err)

	assert.Equal(t, before.Re, p.Re)
	assert.Equal(t, before.Im, p.Im)
}

func TestStepDimensionMismatch(t *testing.T) {
	g, v, _ := freePacket(t)
	st := NewStepper(quantum.DefaultParams(), v, g.Dx, 0.002)

	short := quantum.Packet{
		Re: make(quantum.Wavefunction, 10),
		Im: make(quantum.Wavefunction, 10),
	}
	_, err := st.Step(short)
	assert.ErrorIs(t, err, quantum.ErrDimensionMismatch)
}

func TestRunObserverCadence(t *testing.T) {
	g, v, p := freePacket(t)
	st := NewStepper(quantum.DefaultParams(), v, g.Dx, 0.001)

	var frames []Frame
	final, err := Run(context.Background(), st, p, Config{Dt: 0.001, Duration: 0.1, Every: 20},
		func(f Frame) { frames = append(frames, f) })
	require.NoError(t, err)

	// Initial frame, every 20th of 100 steps, final step already included.
	require.Len(t, frames, 6)
	assert.Equal(t, 0, frames[0].Step)
	assert.Equal(t, 20, frames[1].Step)
	assert.Equal(t, 100, frames[5].Step)
	assert.InDelta(t, probability(final, g.Dx), probability(frames[5].Psi, g.Dx), 1e-12)

	// Input untouched by the run.
	assert.InDelta(t, 1.0, probability(p, g.Dx), 1e-6)
}

func TestRunCanceledBetweenSteps(t *testing.T) {
	g, v, p := freePacket(t)
	st := NewStepper(quantum.DefaultParams(), v, g.Dx, 0.001)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	last, err := Run(ctx, st, p, Config{Dt: 0.001, Duration: 1}, nil)
	assert.ErrorIs(t, err, context.Canceled)
	// The partial state up to the cancellation point is still returned.
	assert.Equal(t, g.Len(), len(last.Re))
}

func TestRunRejectsBadConfig(t *testing.T) {
	g, v, p := freePacket(t)
	st := NewStepper(quantum.DefaultParams(), v, g.Dx, 0.001)

	_, err := Run(context.Background(), st, p, Config{Dt: 0, Duration: 1}, nil)
	assert.Error(t, err)

	_, err = Run(context.Background(), st, p, Config{Dt: 0.001, Duration: -1}, nil)
	assert.Error(t, err)
}

func BenchmarkStep(b *testing.B) {
	g := quantum.NewGrid(-20, 20, 800)
	v := make([]float64, g.Len())
	p := quantum.NewGaussianPacket(g, -5, 1, 2)
	st := NewStepper(quantum.DefaultParams(), v, g.Dx, 0.002)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		next, err := st.Step(p)
		if err != nil {
			b.Fatal(err)
		}
		p = next
	}
}
