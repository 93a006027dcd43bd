package filter

import (
	"math"

	"github.com/devfolio/playground"
	"github.com/devfolio/playground/internal/color"
)

// TintChannel maps an edge magnitude m in [0, 255] to one output channel:
// min(255, m*Gain + Peak*(m/255)).
type TintChannel struct {
	Gain float64
	Peak float64
}

// Tint colorizes an edge magnitude, one TintChannel per R, G, B.
type Tint [3]TintChannel

// Edge tints used by the built-in detectors.
var (
	// PurpleTint is used by Sobel.
	PurpleTint = Tint{{0.6, 99}, {0.3, 50}, {0.9, 241}}

	// CyanTint is used by Prewitt.
	CyanTint = Tint{{0.3, 50}, {0.8, 200}, {0.9, 220}}

	// GreenTint is used by the Laplacian.
	GreenTint = Tint{{0.4, 0}, {1.0, 180}, {0.3, 0}}
)

// Colorize returns the tinted RGB for magnitude m.
func (t Tint) Colorize(m float64) (r, g, b uint8) {
	return t[0].apply(m), t[1].apply(m), t[2].apply(m)
}

func (c TintChannel) apply(m float64) uint8 {
	return color.ClampU8(color.Min255(m*c.Gain + c.Peak*(m/255)))
}

// EdgeFilter scores edge strength on the BT.601 luminance plane.
//
// Each interior pixel is correlated with every kernel; the responses are
// combined as their Euclidean norm (the absolute value for a single kernel),
// capped at 255 and colorized with Tint. The outer ring that the kernels cannot
// cover is only made opaque: its color channels keep whatever dst held.
type EdgeFilter struct {
	Kernels []Kernel
	Tint    Tint
}

// SobelFilter creates the Sobel gradient-magnitude detector (purple edges).
func SobelFilter() *EdgeFilter {
	return &EdgeFilter{Kernels: []Kernel{SobelX(), SobelY()}, Tint: PurpleTint}
}

// PrewittFilter creates the Prewitt gradient-magnitude detector (cyan edges).
func PrewittFilter() *EdgeFilter {
	return &EdgeFilter{Kernels: []Kernel{PrewittX(), PrewittY()}, Tint: CyanTint}
}

// LaplacianFilter creates the Laplacian detector (green edges).
func LaplacianFilter() *EdgeFilter {
	return &EdgeFilter{Kernels: []Kernel{LaplacianKernel()}, Tint: GreenTint}
}

// Apply writes the tinted edge magnitude of src into dst.
func (f *EdgeFilter) Apply(src, dst *playground.Pixmap) {
	if !compatible(src, dst) || len(f.Kernels) == 0 {
		return
	}
	for _, k := range f.Kernels {
		if !k.Valid() {
			return
		}
	}

	width := src.Width()
	height := src.Height()
	gray := color.LumaPlane(make([]float64, width*height), src.Data())
	dstData := dst.Data()
	border := f.border()

	for y := border; y < height-border; y++ {
		for x := border; x < width-border; x++ {
			m := math.Min(255, f.magnitude(gray, width, x, y))
			r, g, b := f.Tint.Colorize(m)

			dstIdx := (y*width + x) * 4
			dstData[dstIdx+0] = r
			dstData[dstIdx+1] = g
			dstData[dstIdx+2] = b
			dstData[dstIdx+3] = 255
		}
	}

	markBorderOpaque(dstData, width, height, border)
}

// border returns the width of the ring the kernels cannot cover.
func (f *EdgeFilter) border() int {
	r := 0
	for _, k := range f.Kernels {
		r = max(r, k.Radius())
	}
	return r
}

// magnitude combines the kernel responses at (x, y).
func (f *EdgeFilter) magnitude(gray []float64, width, x, y int) float64 {
	if len(f.Kernels) == 1 {
		return math.Abs(correlate(gray, width, x, y, f.Kernels[0]))
	}

	sumSq := 0.0
	for _, k := range f.Kernels {
		v := correlate(gray, width, x, y, k)
		sumSq += v * v
	}
	return math.Sqrt(sumSq)
}

// correlate computes the kernel-weighted sum of plane around (x, y).
// The caller guarantees the whole footprint is inside the plane.
func correlate(plane []float64, width, x, y int, k Kernel) float64 {
	half := k.Radius()
	sum := 0.0
	for ky := -half; ky <= half; ky++ {
		row := (y + ky) * width
		for kx := -half; kx <= half; kx++ {
			sum += plane[row+x+kx] * k.Weights[(ky+half)*k.Size+kx+half]
		}
	}
	return sum
}

// markBorderOpaque sets alpha to 255 on the outer ring of the given width,
// leaving the color channels as they are.
func markBorderOpaque(data []uint8, width, height, ring int) {
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x >= ring && x < width-ring && y >= ring && y < height-ring {
				// Jump over the interior span of this row.
				x = width - ring - 1
				continue
			}
			data[(y*width+x)*4+3] = 255
		}
	}
}
