package filter

import (
	"errors"
	"fmt"

	"github.com/devfolio/playground/internal/token"
)

// ErrUnknownFilter is returned by ParseName for tokens that name no filter.
var ErrUnknownFilter = errors.New("filter: unknown filter")

// Name identifies a registered transform.
type Name string

// Registered filter names.
const (
	Original  Name = "original"
	Sobel     Name = "sobel"
	Prewitt   Name = "prewitt"
	Laplacian Name = "laplacian"
	Gaussian  Name = "gaussian"
	Box       Name = "box"
	Grayscale Name = "grayscale"
	Threshold Name = "threshold"
	Sharpen   Name = "sharpen"
	Emboss    Name = "emboss"
	Sepia     Name = "sepia"
	Invert    Name = "invert"
)

var names = []Name{
	Original, Sobel, Prewitt, Laplacian, Gaussian, Box,
	Grayscale, Threshold, Sharpen, Emboss, Sepia, Invert,
}

// Names returns every registered filter name in display order.
func Names() []Name {
	out := make([]Name, len(names))
	copy(out, names)
	return out
}

// ParseName resolves a user-supplied token, ignoring case and surrounding space.
func ParseName(s string) (Name, error) {
	n, ok := token.Match(s, names)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFilter, s)
	}
	return n, nil
}

// Lookup returns a new instance of the transform registered under name.
func Lookup(name Name) (Filter, bool) {
	switch name {
	case Original:
		return IdentityFilter{}, true
	case Sobel:
		return SobelFilter(), true
	case Prewitt:
		return PrewittFilter(), true
	case Laplacian:
		return LaplacianFilter(), true
	case Gaussian:
		return NewGaussianBlur(), true
	case Box:
		return NewBoxBlur(), true
	case Grayscale:
		return NewGrayscaleFilter(), true
	case Threshold:
		return NewThresholdFilter(), true
	case Sharpen:
		return NewSharpen(), true
	case Emboss:
		return NewEmboss(), true
	case Sepia:
		return NewSepiaFilter(), true
	case Invert:
		return NewInvertFilter(), true
	}
	return nil, false
}

// Info is the display metadata of a filter. It has no effect on pixels.
type Info struct {
	Title       string
	Description string

	// Kernel is a plain-text listing of the weights or formula; empty for Original.
	Kernel string
}

var infos = map[Name]Info{
	Original: {
		Title:       "Original Image",
		Description: "No kernel applied. The raw RGB image data as captured by the camera.",
	},
	Sobel: {
		Title:       "Sobel Edge Detection",
		Description: "Computes image gradients using convolution kernels to detect edges. Combines horizontal (Gx) and vertical (Gy) derivatives.",
		Kernel:      "Gx:          Gy:\n[-1  0  1]   [-1 -2 -1]\n[-2  0  2]   [ 0  0  0]\n[-1  0  1]   [ 1  2  1]",
	},
	Prewitt: {
		Title:       "Prewitt Edge Detection",
		Description: "Similar to Sobel but with uniform weights. Less sensitive to noise but may miss fine details.",
		Kernel:      "Gx:          Gy:\n[-1  0  1]   [-1 -1 -1]\n[-1  0  1]   [ 0  0  0]\n[-1  0  1]   [ 1  1  1]",
	},
	Laplacian: {
		Title:       "Laplacian Kernel",
		Description: "Second-order derivative operator that detects edges in all directions. Sensitive to noise but finds fine edges.",
		Kernel:      "[ 0 -1  0 ]\n[-1  4 -1 ]\n[ 0 -1  0 ]",
	},
	Gaussian: {
		Title:       "Gaussian Blur",
		Description: "Smooths the image using a weighted average kernel that approximates a Gaussian distribution. Reduces noise and detail.",
		Kernel:      "1/16 × [ 1  2  1 ]\n       [ 2  4  2 ]\n       [ 1  2  1 ]",
	},
	Box: {
		Title:       "Box Blur (Mean Kernel)",
		Description: "Simple averaging kernel that replaces each pixel with the mean of its neighbors. Fast but can cause blocky artifacts.",
		Kernel:      "1/9 × [ 1  1  1 ]\n      [ 1  1  1 ]\n      [ 1  1  1 ]",
	},
	Grayscale: {
		Title:       "Grayscale Conversion",
		Description: "Converts RGB to luminance using perceptual weights based on human eye sensitivity to different wavelengths.",
		Kernel:      "Y = 0.299R + 0.587G + 0.114B\n\n(ITU-R BT.601 standard)",
	},
	Threshold: {
		Title:       "Binary Threshold",
		Description: "Converts grayscale to binary (black/white) based on a threshold value. Used in segmentation and OCR preprocessing.",
		Kernel:      "if (pixel > 128)\n  output = 255\nelse\n  output = 0",
	},
	Sharpen: {
		Title:       "Sharpening Kernel",
		Description: "Enhances edges by subtracting a blurred version from the original. Uses a high-pass kernel.",
		Kernel:      "[ 0 -1  0 ]\n[-1  5 -1 ]\n[ 0 -1  0 ]",
	},
	Emboss: {
		Title:       "Emboss Effect",
		Description: "Creates a 3D relief effect by computing directional gradients, making the image appear raised or stamped.",
		Kernel:      "[-2 -1  0 ]\n[-1  1  1 ]\n[ 0  1  2 ]",
	},
	Sepia: {
		Title:       "Sepia Tone",
		Description: "Applies a warm brownish tone reminiscent of antique photographs. Uses a color transformation matrix.",
		Kernel:      "R' = 0.393R + 0.769G + 0.189B\nG' = 0.349R + 0.686G + 0.168B\nB' = 0.272R + 0.534G + 0.131B",
	},
	Invert: {
		Title:       "Color Inversion (Negative)",
		Description: "Inverts all color values, creating a photographic negative effect. Each channel: output = 255 - input.",
		Kernel:      "R' = 255 - R\nG' = 255 - G\nB' = 255 - B",
	},
}

// Describe returns the display metadata for name.
func Describe(name Name) (Info, bool) {
	info, ok := infos[name]
	return info, ok
}
