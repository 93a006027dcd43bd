package filter

import (
	"github.com/devfolio/playground"
	"github.com/devfolio/playground/internal/color"
)

// ConvolutionFilter applies a kernel to the RGB channels of every pixel.
//
// Samples outside the image are replaced by the nearest edge pixel. Each
// channel becomes clamp(sum/Divisor + Offset, 0, 255); alpha is copied from
// the source pixel.
type ConvolutionFilter struct {
	Kernel Kernel

	// Divisor normalizes the weighted sum. Zero is treated as 1.
	Divisor float64

	// Offset is added after normalization (128 re-centers emboss on mid-gray).
	Offset float64
}

// NewConvolutionFilter creates a convolution filter.
func NewConvolutionFilter(k Kernel, divisor, offset float64) *ConvolutionFilter {
	return &ConvolutionFilter{Kernel: k, Divisor: divisor, Offset: offset}
}

// NewBoxBlur creates the 3x3 mean blur.
func NewBoxBlur() *ConvolutionFilter {
	return NewConvolutionFilter(BoxKernel(), 9, 0)
}

// NewGaussianBlur creates the 3x3 binomial blur.
func NewGaussianBlur() *ConvolutionFilter {
	return NewConvolutionFilter(GaussianKernel(), 16, 0)
}

// NewSharpen creates the 3x3 sharpening filter.
func NewSharpen() *ConvolutionFilter {
	return NewConvolutionFilter(SharpenKernel(), 1, 0)
}

// NewEmboss creates the emboss filter, biased to mid-gray.
func NewEmboss() *ConvolutionFilter {
	return NewConvolutionFilter(EmbossKernel(), 1, 128)
}

// Apply convolves src into dst.
func (f *ConvolutionFilter) Apply(src, dst *playground.Pixmap) {
	if !compatible(src, dst) {
		return
	}

	k := f.Kernel
	if k.Size == 0 && len(k.Weights) == 0 {
		IdentityFilter{}.Apply(src, dst)
		return
	}
	if !k.Valid() {
		return
	}

	divisor := f.Divisor
	if divisor == 0 {
		divisor = 1
	}

	width := src.Width()
	height := src.Height()
	srcData := src.Data()
	dstData := dst.Data()
	half := k.Radius()

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var r, g, b float64

			for ky := 0; ky < k.Size; ky++ {
				py := clampIndex(y+ky-half, height)
				for kx := 0; kx < k.Size; kx++ {
					px := clampIndex(x+kx-half, width)

					srcIdx := (py*width + px) * 4
					weight := k.Weights[ky*k.Size+kx]

					r += float64(srcData[srcIdx+0]) * weight
					g += float64(srcData[srcIdx+1]) * weight
					b += float64(srcData[srcIdx+2]) * weight
				}
			}

			dstIdx := (y*width + x) * 4
			dstData[dstIdx+0] = color.ClampU8(r/divisor + f.Offset)
			dstData[dstIdx+1] = color.ClampU8(g/divisor + f.Offset)
			dstData[dstIdx+2] = color.ClampU8(b/divisor + f.Offset)
			dstData[dstIdx+3] = srcData[dstIdx+3]
		}
	}
}
