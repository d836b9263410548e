// Package viz renders wavefunctions and potentials in the terminal and
// drives the live time-evolution view.
package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"schrod/internal/quantum"
)

const (
	plotHeight = 15
	plotWidth  = 80
)

// Wavefunction plots a single stationary state.
func Wavefunction(psi quantum.Wavefunction, caption string) string {
	return asciigraph.Plot(psi,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}

// Wavefunctions overlays several states in one plot.
func Wavefunctions(psis []quantum.Wavefunction, caption string) string {
	series := make([][]float64, len(psis))
	for i, p := range psis {
		series[i] = p
	}
	return asciigraph.PlotMany(series,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.Yellow, asciigraph.Red, asciigraph.Blue),
	)
}

// Density plots |psi|² of a packet.
func Density(p quantum.Packet, t float64) string {
	return asciigraph.Plot(p.Density(),
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(fmt.Sprintf("|psi|²  t=%.3f", t)),
	)
}

// Potential plots the sampled potential profile.
func Potential(v []float64, caption string) string {
	return asciigraph.Plot(v,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}
