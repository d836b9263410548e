package shoot

import (
	"testing"

	"schrod/internal/quantum"
)

func BenchmarkPropagate(b *testing.B) {
	g := quantum.NewGrid(0, 1, 1000)
	v := make([]float64, g.Len())
	seed := make(quantum.Wavefunction, g.Len())
	seed[1] = 1e-4
	mhdx2 := quantum.DefaultParams().Mhdx2(g.Dx)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Propagate(mhdx2, v, 4.9, seed)
	}
}

func BenchmarkSolveGroundState(b *testing.B) {
	g := quantum.NewGrid(0, 1, 1000)
	v := make([]float64, g.Len())
	mhdx2 := quantum.DefaultParams().Mhdx2(g.Dx)
	bracket := quantum.Bracket{Lo: 0, Hi: 200}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := SolveBracket(mhdx2, v, DefaultSeed(), bracket, 0, 100); err != nil {
			b.Fatal(err)
		}
	}
}
