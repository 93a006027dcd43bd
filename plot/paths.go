package plot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/vector"

	"github.com/devfolio/playground"
	"github.com/devfolio/playground/descent"
)

// Path styling, in pixels.
const (
	pathWidth   = 2.5
	pointRadius = 3
	lastRadius  = 6
	ringWidth   = 2
	arrowWidth  = 2
	arrowHead   = 8
	arrowSpread = 0.4 // radians either side of the shaft

	// arrowMinGradient is the gradient magnitude below which no arrow is drawn.
	arrowMinGradient = 1e-3
	arrowMaxLength   = 50
	arrowGain        = 30
)

// Optimizer and overlay colors.
var (
	plainColor    = mustHex("#ef4444")
	momentumColor = mustHex("#22c55e")
	adaptiveColor = mustHex("#3b82f6")
	arrowColor    = mustHex("#f59e0b")
	ringColor     = colorful.Color{R: 1, G: 1, B: 1}
)

// mustHex parses a "#rrggbb" literal and panics on malformed input.
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("plot: bad color %q: %v", s, err))
	}
	return c
}

// KindColor returns the path color of an update rule.
func KindColor(k descent.Kind) color.NRGBA {
	switch k {
	case descent.Momentum:
		return nrgba(momentumColor)
	case descent.Adaptive:
		return nrgba(adaptiveColor)
	}
	return nrgba(plainColor)
}

// Paths draws each trace over img: the polyline through its points, a dot
// at every point with a larger ringed dot at the latest one, and an arrow
// along the negative gradient there. Traces with fewer than two points are
// skipped.
func Paths(img *playground.Pixmap, traces []descent.Trace) {
	if img == nil {
		return
	}
	p := newPainter(img)
	w := float64(img.Width())
	h := float64(img.Height())

	for _, tr := range traces {
		if len(tr.Path) < 2 {
			continue
		}
		c := KindColor(tr.Kind)

		pts := make([]vec, len(tr.Path))
		for i, q := range tr.Path {
			pts[i] = vec{q.X * w, q.Y * h}
		}

		for i := 1; i < len(pts); i++ {
			p.segment(pts[i-1], pts[i], pathWidth, c)
		}
		for _, q := range pts[:len(pts)-1] {
			p.disc(q, pointRadius, c)
		}
		last := pts[len(pts)-1]
		p.disc(last, lastRadius+ringWidth/2, nrgba(ringColor))
		p.disc(last, lastRadius-ringWidth/2, c)

		p.arrow(last, tr.Gradient)
	}
}

// arrow draws an arrow from at pointing downhill, along −grad.
func (p *painter) arrow(at vec, grad descent.Point) {
	mag := grad.Norm()
	if !(mag > arrowMinGradient) {
		return
	}
	scale := math.Min(arrowMaxLength, arrowGain/mag)
	end := vec{at.x - grad.X*scale, at.y - grad.Y*scale}
	c := nrgba(arrowColor)

	p.segment(at, end, arrowWidth, c)

	angle := math.Atan2(end.y-at.y, end.x-at.x)
	p.polygon(c,
		end,
		vec{end.x - arrowHead*math.Cos(angle-arrowSpread), end.y - arrowHead*math.Sin(angle-arrowSpread)},
		vec{end.x - arrowHead*math.Cos(angle+arrowSpread), end.y - arrowHead*math.Sin(angle+arrowSpread)},
	)
}

type vec struct {
	x, y float64
}

// painter fills polygons onto a draw.Image, one shape at a time.
type painter struct {
	dst    draw.Image
	bounds image.Rectangle
	z      *vector.Rasterizer
}

func newPainter(dst draw.Image) *painter {
	return &painter{dst: dst, bounds: dst.Bounds(), z: vector.NewRasterizer(0, 0)}
}

// segment fills a line of the given width from a to b.
func (p *painter) segment(a, b vec, width float64, c color.Color) {
	dx, dy := b.x-a.x, b.y-a.y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	p.polygon(c,
		vec{a.x + nx, a.y + ny},
		vec{b.x + nx, b.y + ny},
		vec{b.x - nx, b.y - ny},
		vec{a.x - nx, a.y - ny},
	)
}

// disc fills a circle of radius r around c.
func (p *painter) disc(center vec, r float64, c color.Color) {
	const n = 24
	pts := make([]vec, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / n
		pts[i] = vec{center.x + r*math.Cos(a), center.y + r*math.Sin(a)}
	}
	p.polygon(c, pts...)
}

// polygon fills the closed polygon through pts with c. Only the bounding
// box of the polygon is rasterized.
func (p *painter) polygon(c color.Color, pts ...vec) {
	if len(pts) < 3 {
		return
	}

	minX, minY := pts[0].x, pts[0].y
	maxX, maxY := minX, minY
	for _, q := range pts[1:] {
		minX, maxX = math.Min(minX, q.x), math.Max(maxX, q.x)
		minY, maxY = math.Min(minY, q.y), math.Max(maxY, q.y)
	}
	box := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX))+1, int(math.Ceil(maxY))+1,
	)
	clip := box.Intersect(p.bounds)
	if clip.Empty() {
		return
	}

	ox, oy := float64(box.Min.X), float64(box.Min.Y)
	p.z.Reset(box.Dx(), box.Dy())
	p.z.DrawOp = draw.Over
	p.z.MoveTo(float32(pts[0].x-ox), float32(pts[0].y-oy))
	for _, q := range pts[1:] {
		p.z.LineTo(float32(q.x-ox), float32(q.y-oy))
	}
	p.z.ClosePath()

	p.z.Draw(p.dst, box, image.NewUniform(c), image.Point{})
}

func nrgba(c colorful.Color) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
