package descent

import "gonum.org/v1/gonum/diff/fd"

// DefaultGradientStep is the finite-difference step h.
const DefaultGradientStep = 1e-3

// Gradient estimates ∇f at p with a central finite difference of step h:
// ∂f/∂x ≈ (f(x+h, y) − f(x−h, y)) / 2h, and likewise for y.
// A non-positive h uses DefaultGradientStep.
func Gradient(f LossFunc, p Point, h float64) Point {
	if h <= 0 {
		h = DefaultGradientStep
	}
	g := fd.Gradient(make([]float64, 2), func(v []float64) float64 {
		return f(v[0], v[1])
	}, []float64{p.X, p.Y}, &fd.Settings{
		Formula: fd.Central,
		Step:    h,
	})
	return Point{g[0], g[1]}
}
