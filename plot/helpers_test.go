package plot

import (
	"image/color"
	"testing"

	"github.com/devfolio/playground"
	"github.com/devfolio/playground/descent"
)

// blackPixmap creates an opaque black pixmap.
func blackPixmap(w, h int) *playground.Pixmap {
	p := playground.NewPixmap(w, h)
	data := p.Data()
	for i := 3; i < len(data); i += 4 {
		data[i] = 255
	}
	return p
}

// pixel returns the color at (x, y).
func pixel(p *playground.Pixmap, x, y int) color.NRGBA {
	r, g, b, a := p.RGBA8(x, y)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// quadratic returns the bowl surface or fails the test.
func quadratic(t testing.TB) descent.Surface {
	t.Helper()
	s, ok := descent.LookupSurface(descent.Quadratic)
	if !ok {
		t.Fatal("quadratic surface missing")
	}
	return s
}
