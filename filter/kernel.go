package filter

import (
	"errors"
	"fmt"
	"strings"
)

// ErrKernelShape is returned when kernel rows do not form an odd square matrix.
var ErrKernelShape = errors.New("filter: kernel must be a non-empty odd square matrix")

// Kernel is a square convolution matrix stored in row-major order.
// Size is always odd so a single center cell exists.
type Kernel struct {
	Size    int
	Weights []float64
}

// NewKernel builds a kernel from rows of weights.
// Returns ErrKernelShape for empty, ragged, non-square or even-sized input.
func NewKernel(rows [][]float64) (Kernel, error) {
	n := len(rows)
	if n == 0 || n%2 == 0 {
		return Kernel{}, fmt.Errorf("%w: %d rows", ErrKernelShape, n)
	}

	weights := make([]float64, 0, n*n)
	for i, row := range rows {
		if len(row) != n {
			return Kernel{}, fmt.Errorf("%w: row %d has %d columns, want %d", ErrKernelShape, i, len(row), n)
		}
		weights = append(weights, row...)
	}

	return Kernel{Size: n, Weights: weights}, nil
}

// mustKernel is NewKernel for the fixed presets below.
func mustKernel(rows ...[]float64) Kernel {
	k, err := NewKernel(rows)
	if err != nil {
		panic(err)
	}
	return k
}

// At returns the weight at column kx, row ky.
func (k Kernel) At(kx, ky int) float64 {
	return k.Weights[ky*k.Size+kx]
}

// Valid reports whether k is an odd square with one weight per cell, the
// shape NewKernel guarantees. Filters skip kernels that are not.
func (k Kernel) Valid() bool {
	return k.Size > 0 && k.Size%2 == 1 && len(k.Weights) == k.Size*k.Size
}

// Radius returns the distance from the center cell to the kernel edge.
func (k Kernel) Radius() int {
	return k.Size / 2
}

// Sum returns the total of all weights.
func (k Kernel) Sum() float64 {
	sum := 0.0
	for _, w := range k.Weights {
		sum += w
	}
	return sum
}

// String formats the kernel one bracketed row per line.
func (k Kernel) String() string {
	var sb strings.Builder
	for ky := 0; ky < k.Size; ky++ {
		if ky > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteByte('[')
		for kx := 0; kx < k.Size; kx++ {
			fmt.Fprintf(&sb, "%3g", k.At(kx, ky))
		}
		sb.WriteString(" ]")
	}
	return sb.String()
}

// BoxKernel returns the 3x3 uniform mean kernel (weight sum 9).
func BoxKernel() Kernel {
	return mustKernel(
		[]float64{1, 1, 1},
		[]float64{1, 1, 1},
		[]float64{1, 1, 1},
	)
}

// GaussianKernel returns the 3x3 binomial approximation of a Gaussian (weight sum 16).
func GaussianKernel() Kernel {
	return mustKernel(
		[]float64{1, 2, 1},
		[]float64{2, 4, 2},
		[]float64{1, 2, 1},
	)
}

// SharpenKernel returns the 3x3 high-pass sharpening kernel (weight sum 1).
func SharpenKernel() Kernel {
	return mustKernel(
		[]float64{0, -1, 0},
		[]float64{-1, 5, -1},
		[]float64{0, -1, 0},
	)
}

// EmbossKernel returns the 3x3 diagonal relief kernel (weight sum 1).
func EmbossKernel() Kernel {
	return mustKernel(
		[]float64{-2, -1, 0},
		[]float64{-1, 1, 1},
		[]float64{0, 1, 2},
	)
}

// SobelX returns the horizontal Sobel derivative kernel.
func SobelX() Kernel {
	return mustKernel(
		[]float64{-1, 0, 1},
		[]float64{-2, 0, 2},
		[]float64{-1, 0, 1},
	)
}

// SobelY returns the vertical Sobel derivative kernel.
func SobelY() Kernel {
	return mustKernel(
		[]float64{-1, -2, -1},
		[]float64{0, 0, 0},
		[]float64{1, 2, 1},
	)
}

// PrewittX returns the horizontal Prewitt derivative kernel.
func PrewittX() Kernel {
	return mustKernel(
		[]float64{-1, 0, 1},
		[]float64{-1, 0, 1},
		[]float64{-1, 0, 1},
	)
}

// PrewittY returns the vertical Prewitt derivative kernel.
func PrewittY() Kernel {
	return mustKernel(
		[]float64{-1, -1, -1},
		[]float64{0, 0, 0},
		[]float64{1, 1, 1},
	)
}

// LaplacianKernel returns the 4-neighbour second-derivative kernel.
func LaplacianKernel() Kernel {
	return mustKernel(
		[]float64{0, -1, 0},
		[]float64{-1, 4, -1},
		[]float64{0, -1, 0},
	)
}
