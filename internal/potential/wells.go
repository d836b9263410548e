// Package potential defines the scalar potential functions the solvers
// consume and their sampling onto a grid.
package potential

import "schrod/internal/quantum"

// Func is any scalar potential of position.
type Func func(x float64) float64

// Sample evaluates f at every grid point.
func Sample(f Func, g quantum.Grid) []float64 {
	v := make([]float64, g.Len())
	for i, x := range g.X {
		v[i] = f(x)
	}
	return v
}

// Free is the zero potential.
func Free() Func {
	return func(float64) float64 { return 0 }
}

// SquareWell is depth inside [left, right] and zero outside. A negative
// depth binds states below the rim.
func SquareWell(left, right, depth float64) Func {
	return func(x float64) float64 {
		if x >= left && x <= right {
			return depth
		}
		return 0
	}
}

// Barrier is height inside [left, right] and zero outside.
func Barrier(left, right, height float64) Func {
	return SquareWell(left, right, height)
}

// Harmonic is the oscillator ½k(x-center)².
func Harmonic(k, center float64) Func {
	return func(x float64) float64 {
		d := x - center
		return 0.5 * k * d * d
	}
}

// DoubleWell is the bistable quartic a(x²-b)², with minima at ±√b.
func DoubleWell(a, b float64) Func {
	return func(x float64) float64 {
		d := x*x - b
		return a * d * d
	}
}

// Ramp is the linear potential slope·x, zero at the origin.
func Ramp(slope float64) Func {
	return func(x float64) float64 { return slope * x }
}
