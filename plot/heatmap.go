package plot

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/devfolio/playground"
	"github.com/devfolio/playground/descent"
)

// DefaultLevels is the number of contour levels drawn by Render.
const DefaultLevels = 12

// contourSpacing is the lattice step between contour dots, in pixels.
const contourSpacing = 3

// contourBand is the fraction of the loss range a dot may be off its level.
const contourBand = 0.02

// Heatmap paints every pixel of f with the theme ramp of its normalized loss.
// The result is opaque and has the dimensions of f.
func Heatmap(f descent.Field, theme Theme) *playground.Pixmap {
	img := playground.NewPixmap(f.Width, f.Height)
	data := img.Data()
	for py := 0; py < f.Height; py++ {
		for px := 0; px < f.Width; px++ {
			c := theme.Ramp(f.Normalized(px, py))
			i := (py*f.Width + px) * 4
			data[i+0] = c.R
			data[i+1] = c.G
			data[i+2] = c.B
			data[i+3] = c.A
		}
	}
	return img
}

// Contours marks lattice pixels whose loss lies within 2% of the range of
// one of levels evenly spaced loss values, blending the theme's contour color
// over img. img must have the dimensions of f.
func Contours(img *playground.Pixmap, f descent.Field, theme Theme, levels int) {
	if img == nil || img.Width() != f.Width || img.Height() != f.Height {
		return
	}

	ink, alpha := theme.contour()
	band := f.Range() * contourBand
	for l := 0; l < levels; l++ {
		target := f.Level(l, levels)
		for px := 0; px < f.Width; px += contourSpacing {
			for py := 0; py < f.Height; py += contourSpacing {
				if math.Abs(f.At(px, py)-target) < band {
					blendPixel(img, px, py, ink, alpha)
				}
			}
		}
	}
}

// blendPixel mixes c over the pixel at (x, y) with opacity alpha.
func blendPixel(img *playground.Pixmap, x, y int, c colorful.Color, alpha float64) {
	r, g, b, a := img.RGBA8(x, y)
	base := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	nr, ng, nb := base.BlendRgb(c, alpha).Clamped().RGB255()
	img.SetRGBA8(x, y, nr, ng, nb, a)
}
