package playground

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"os"
	"path/filepath"

	"github.com/devfolio/playground/internal/imageio"
)

// Pixmap represents a rectangular pixel buffer.
//
// Pixels are stored as straight (non-premultiplied) RGBA, 4 bytes per pixel,
// row-major with no padding between rows. A new Pixmap is transparent black.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a new pixmap with the given dimensions.
// Non-positive dimensions produce an empty pixmap.
func NewPixmap(width, height int) *Pixmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// RGBA8 returns the channels of a single pixel.
// Out-of-bounds coordinates return transparent black.
func (p *Pixmap) RGBA8(x, y int) (r, g, b, a uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0, 0, 0, 0
	}
	i := (y*p.width + x) * 4
	return p.data[i+0], p.data[i+1], p.data[i+2], p.data[i+3]
}

// SetRGBA8 sets the channels of a single pixel.
// Out-of-bounds coordinates are silently ignored.
func (p *Pixmap) SetRGBA8(x, y int, r, g, b, a uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = r
	p.data[i+1] = g
	p.data[i+2] = b
	p.data[i+3] = a
}

// SameSize reports whether p and other have identical dimensions.
func (p *Pixmap) SameSize(other *Pixmap) bool {
	return other != nil && p.width == other.width && p.height == other.height
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	c := &Pixmap{
		width:  p.width,
		height: p.height,
		data:   make([]uint8, len(p.data)),
	}
	copy(c.data, p.data)
	return c
}

// Equal reports whether both pixmaps have the same size and pixel data.
func (p *Pixmap) Equal(other *Pixmap) bool {
	return p.SameSize(other) && bytes.Equal(p.data, other.data)
}

// ToImage converts the pixmap to an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	pm := NewPixmap(bounds.Dx(), bounds.Dy())

	// Fast path for NRGBA images with matching stride
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Stride == pm.width*4 {
		copy(pm.data, nrgba.Pix)
		return pm
	}

	dst := &image.NRGBA{Pix: pm.data, Stride: pm.width * 4, Rect: image.Rect(0, 0, pm.width, pm.height)}
	draw.Draw(dst, dst.Rect, img, bounds.Min, draw.Src)
	return pm
}

// LoadPixmap loads an image file and fits it into a width x height pixmap.
func LoadPixmap(path string, width, height int) (*Pixmap, error) {
	img, err := imageio.Load(path)
	if err != nil {
		return nil, err
	}
	return FromImage(imageio.Fit(img, width, height)), nil
}

// DecodePixmap decodes an image from r and fits it into a width x height pixmap.
func DecodePixmap(r io.Reader, width, height int) (*Pixmap, error) {
	img, err := imageio.Decode(r)
	if err != nil {
		return nil, err
	}
	return FromImage(imageio.Fit(img, width, height)), nil
}

// EncodePNG encodes the pixmap as PNG to the given writer.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	return imageio.Encode(w, p.ToImage(), imageio.FormatPNG)
}

// Save writes the pixmap to path, as JPEG for .jpg/.jpeg names and PNG otherwise.
func (p *Pixmap) Save(path string) error {
	return imageio.Save(path, p.ToImage())
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("playground: create file: %w", err)
	}

	if err := p.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	r, g, b, a := p.RGBA8(x, y)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// Set implements the draw.Image interface.
func (p *Pixmap) Set(x, y int, c color.Color) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	p.SetRGBA8(x, y, n.R, n.G, n.B, n.A)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
