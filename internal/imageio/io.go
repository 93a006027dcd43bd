// Package imageio loads source pictures for the filter engine.
//
// Decoding is format-sniffed through the image package registry; PNG, JPEG
// and GIF come from the standard library, WebP, BMP and TIFF from
// golang.org/x/image. Decoded pictures are stretched into the fixed frame the
// engine works on, the same way a canvas drawImage(img, 0, 0, w, h) would.
package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("imageio: empty data")
)

// Load loads an image from the given file path, auto-detecting the format.
func Load(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// LoadBytes loads an image from a byte slice, auto-detecting the format.
func LoadBytes(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image from the given reader, auto-detecting the format.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, ErrUnsupportedFormat
		}
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}
	return img, nil
}

// Fit scales img into a width x height NRGBA image, ignoring aspect ratio.
// A picture that already has the requested size is copied without resampling.
// Non-positive dimensions return an empty image.
func Fit(img image.Image, width, height int) *image.NRGBA {
	if width <= 0 || height <= 0 {
		return image.NewNRGBA(image.Rectangle{})
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	src := img.Bounds()
	if src.Dx() == width && src.Dy() == height {
		draw.Draw(dst, dst.Bounds(), img, src.Min, draw.Src)
		return dst
	}

	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, src, draw.Src, nil)
	return dst
}

// Save encodes img to path, choosing PNG or JPEG from the file extension.
// Unknown extensions are written as PNG.
func Save(path string, img image.Image) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}

	if err := Encode(f, img, FormatFor(path)); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Format identifies an output encoding.
type Format string

// Supported output formats.
const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
)

// FormatFor returns the output format implied by a file name.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return FormatJPEG
	default:
		return FormatPNG
	}
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case FormatPNG:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("imageio: encode PNG: %w", err)
		}
	case FormatJPEG:
		if err := jpeg.Encode(w, img, &jpeg.Options{Quality: 92}); err != nil {
			return fmt.Errorf("imageio: encode JPEG: %w", err)
		}
	default:
		return ErrUnsupportedFormat
	}
	return nil
}
