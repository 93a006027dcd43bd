package descent

import "gonum.org/v1/gonum/floats"

// Field is a surface evaluated on a pixel lattice. Pixel (px, py) samples
// the loss at (px/Width, py/Height).
type Field struct {
	Width  int
	Height int

	// Values holds the loss per pixel, row-major.
	Values []float64

	// Min and Max bound the loss on the coarse lattice used for
	// normalization. Pixels between lattice points may fall outside.
	Min float64
	Max float64
}

// Sample evaluates s over a width x height lattice. Min and Max are taken
// from every stride-th pixel in both directions; a stride below 1 uses every
// pixel.
func Sample(s Surface, width, height, stride int) Field {
	width = max(width, 0)
	height = max(height, 0)
	stride = max(stride, 1)

	f := Field{Width: width, Height: height, Values: make([]float64, width*height)}
	coarse := make([]float64, 0, (width/stride+1)*(height/stride+1))

	for py := 0; py < height; py++ {
		y := float64(py) / float64(height)
		for px := 0; px < width; px++ {
			v := s.Loss(float64(px)/float64(width), y)
			f.Values[py*width+px] = v
			if py%stride == 0 && px%stride == 0 {
				coarse = append(coarse, v)
			}
		}
	}

	if len(coarse) > 0 {
		f.Min = floats.Min(coarse)
		f.Max = floats.Max(coarse)
	}
	return f
}

// At returns the loss at pixel (px, py), or 0 outside the field.
func (f Field) At(px, py int) float64 {
	if px < 0 || px >= f.Width || py < 0 || py >= f.Height {
		return 0
	}
	return f.Values[py*f.Width+px]
}

// Range returns Max − Min, or 1 for a flat field.
func (f Field) Range() float64 {
	if r := f.Max - f.Min; r != 0 {
		return r
	}
	return 1
}

// Normalized returns the loss at (px, py) mapped so that Min is 0 and Max is 1.
func (f Field) Normalized(px, py int) float64 {
	return (f.At(px, py) - f.Min) / f.Range()
}

// Level returns the loss of contour i out of n, evenly spaced from Min.
func (f Field) Level(i, n int) float64 {
	if n <= 0 {
		return f.Min
	}
	return f.Min + float64(i)/float64(n)*f.Range()
}
