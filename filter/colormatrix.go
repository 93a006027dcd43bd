package filter

import (
	"github.com/devfolio/playground"
	"github.com/devfolio/playground/internal/color"
)

// ColorMatrixFilter applies a 4x5 color transformation matrix to every pixel.
// The transformation is:
//
//	[R']   [a00 a01 a02 a03 a04]   [R]
//	[G'] = [a10 a11 a12 a13 a14] * [G]
//	[B']   [a20 a21 a22 a23 a24]   [B]
//	[A']   [a30 a31 a32 a33 a34]   [A]
//	                               [1]
//
// The fifth column provides bias/offset values. Channels are straight alpha
// in the [0, 255] range; results are rounded and clamped back to bytes.
type ColorMatrixFilter struct {
	// Matrix is the 4x5 transformation matrix in row-major order.
	// [0-4] = row 0 (R), [5-9] = row 1 (G), [10-14] = row 2 (B), [15-19] = row 3 (A)
	Matrix [20]float64
}

// NewColorMatrixFilter creates a color matrix filter with the given matrix.
func NewColorMatrixFilter(matrix [20]float64) *ColorMatrixFilter {
	return &ColorMatrixFilter{Matrix: matrix}
}

// NewIdentityColorMatrix creates a color matrix filter that passes through unchanged.
func NewIdentityColorMatrix() *ColorMatrixFilter {
	return &ColorMatrixFilter{
		Matrix: [20]float64{
			1, 0, 0, 0, 0, // R
			0, 1, 0, 0, 0, // G
			0, 0, 1, 0, 0, // B
			0, 0, 0, 1, 0, // A
		},
	}
}

// NewGrayscaleFilter creates a filter that replicates BT.601 luminance into R, G and B.
func NewGrayscaleFilter() *ColorMatrixFilter {
	const (
		lumR = color.LumaR
		lumG = color.LumaG
		lumB = color.LumaB
	)
	return &ColorMatrixFilter{
		Matrix: [20]float64{
			lumR, lumG, lumB, 0, 0,
			lumR, lumG, lumB, 0, 0,
			lumR, lumG, lumB, 0, 0,
			0, 0, 0, 1, 0,
		},
	}
}

// NewSepiaFilter creates a filter that applies sepia tone effect.
func NewSepiaFilter() *ColorMatrixFilter {
	return &ColorMatrixFilter{
		Matrix: [20]float64{
			0.393, 0.769, 0.189, 0, 0,
			0.349, 0.686, 0.168, 0, 0,
			0.272, 0.534, 0.131, 0, 0,
			0, 0, 0, 1, 0,
		},
	}
}

// NewInvertFilter creates a filter that inverts colors.
func NewInvertFilter() *ColorMatrixFilter {
	return &ColorMatrixFilter{
		Matrix: [20]float64{
			-1, 0, 0, 0, 255,
			0, -1, 0, 0, 255,
			0, 0, -1, 0, 255,
			0, 0, 0, 1, 0,
		},
	}
}

// Apply applies the color matrix transformation to the image.
func (f *ColorMatrixFilter) Apply(src, dst *playground.Pixmap) {
	if !compatible(src, dst) {
		return
	}

	srcData := src.Data()
	dstData := dst.Data()
	m := &f.Matrix

	for i := 0; i+3 < len(srcData); i += 4 {
		r := float64(srcData[i+0])
		g := float64(srcData[i+1])
		b := float64(srcData[i+2])
		a := float64(srcData[i+3])

		dstData[i+0] = color.ClampU8(m[0]*r + m[1]*g + m[2]*b + m[3]*a + m[4])
		dstData[i+1] = color.ClampU8(m[5]*r + m[6]*g + m[7]*b + m[8]*a + m[9])
		dstData[i+2] = color.ClampU8(m[10]*r + m[11]*g + m[12]*b + m[13]*a + m[14])
		dstData[i+3] = color.ClampU8(m[15]*r + m[16]*g + m[17]*b + m[18]*a + m[19])
	}
}

// Multiply returns a new filter that is the product of this filter and another.
// The result applies this filter first, then the other.
func (f *ColorMatrixFilter) Multiply(other *ColorMatrixFilter) *ColorMatrixFilter {
	// Applying f then other means other * f in matrix terms.
	a := &other.Matrix
	b := &f.Matrix

	result := &ColorMatrixFilter{}
	r := &result.Matrix

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += a[row*5+k] * b[k*5+col]
			}
			r[row*5+col] = sum
		}
		// Offset column (5th)
		r[row*5+4] = a[row*5+0]*b[4] + a[row*5+1]*b[9] +
			a[row*5+2]*b[14] + a[row*5+3]*b[19] + a[row*5+4]
	}

	return result
}
