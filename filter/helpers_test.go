package filter

import (
	"math/rand/v2"

	"github.com/devfolio/playground"
)

// Test helper functions shared across filter tests.

// createTestPixmap creates a pixmap filled with the given color.
func createTestPixmap(w, h int, r, g, b, a uint8) *playground.Pixmap {
	p := playground.NewPixmap(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p.SetRGBA8(x, y, r, g, b, a)
		}
	}
	return p
}

// randomPixmap creates a pixmap with deterministic pseudo-random channels.
func randomPixmap(w, h int, seed uint64) *playground.Pixmap {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	p := playground.NewPixmap(w, h)
	data := p.Data()
	for i := range data {
		data[i] = uint8(rng.IntN(256))
	}
	return p
}

// stepPixmap creates an opaque gray image whose columns x >= edge have value v
// and the rest value 0.
func stepPixmap(w, h, edge int, v uint8) *playground.Pixmap {
	p := createTestPixmap(w, h, 0, 0, 0, 255)
	for y := 0; y < h; y++ {
		for x := edge; x < w; x++ {
			p.SetRGBA8(x, y, v, v, v, 255)
		}
	}
	return p
}

// onBorder reports whether (x, y) lies on the one-pixel outer ring.
func onBorder(w, h, x, y int) bool {
	return x == 0 || y == 0 || x == w-1 || y == h-1
}

// channelSum returns the sum of channel c (0=R .. 3=A) over the whole image.
func channelSum(p *playground.Pixmap, c int) int {
	sum := 0
	data := p.Data()
	for i := c; i < len(data); i += 4 {
		sum += int(data[i])
	}
	return sum
}

// absi returns the absolute value of an int.
func absi(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
