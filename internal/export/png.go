// Package export renders solver output to image files with gonum/plot.
package export

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"schrod/internal/evolve"
	"schrod/internal/quantum"
	"schrod/internal/shoot"
)

func xys(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts
}

// Eigenfunctions draws the potential with each normalized eigenfunction
// offset vertically to its energy, the usual textbook level picture.
func Eigenfunctions(path string, g quantum.Grid, v []float64, results []shoot.Result) error {
	p := plot.New()
	p.Title.Text = "Stationary states"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "energy"

	args := []interface{}{"V(x)", xys(g.X, v)}
	for _, r := range results {
		shifted := make([]float64, len(r.Psi))
		for i, val := range r.Psi {
			shifted[i] = r.Energy + val
		}
		args = append(args, fmt.Sprintf("n=%d (E=%.4f)", r.Number, r.Energy), xys(g.X, shifted))
	}
	if err := plotutil.AddLines(p, args...); err != nil {
		return err
	}
	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

// DensitySnapshots overlays the probability density of selected frames.
func DensitySnapshots(path string, g quantum.Grid, frames []evolve.Frame) error {
	p := plot.New()
	p.Title.Text = "Probability density"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "|psi|²"

	var args []interface{}
	for _, f := range frames {
		args = append(args, fmt.Sprintf("t=%.3f", f.Time), xys(g.X, f.Psi.Density()))
	}
	if err := plotutil.AddLines(p, args...); err != nil {
		return err
	}
	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

// Levels draws the solved spectrum as horizontal lines over the potential.
func Levels(path string, g quantum.Grid, v []float64, results []shoot.Result) error {
	p := plot.New()
	p.Title.Text = "Energy levels"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "energy"

	vLine, err := plotter.NewLine(xys(g.X, v))
	if err != nil {
		return err
	}
	p.Add(vLine)
	p.Legend.Add("V(x)", vLine)

	x0, x1 := g.X[0], g.X[g.Len()-1]
	for _, r := range results {
		level, err := plotter.NewLine(plotter.XYs{{X: x0, Y: r.Energy}, {X: x1, Y: r.Energy}})
		if err != nil {
			return err
		}
		level.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		p.Add(level)
		p.Legend.Add(fmt.Sprintf("E%d=%.4f", r.Number, r.Energy), level)
	}
	return p.Save(6*vg.Inch, 5*vg.Inch, path)
}
