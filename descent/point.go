package descent

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Point is a position or a vector on the unit square.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Norm returns the Euclidean length of p.
func (p Point) Norm() float64 {
	return floats.Norm([]float64{p.X, p.Y}, 2)
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return floats.Distance([]float64{p.X, p.Y}, []float64{q.X, q.Y}, 2)
}

// Clamp limits both coordinates to [lo, hi].
func (p Point) Clamp(lo, hi float64) Point {
	return Point{clamp(p.X, lo, hi), clamp(p.Y, lo, hi)}
}

// String formats p as "(x, y)" with four decimals.
func (p Point) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", p.X, p.Y)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
