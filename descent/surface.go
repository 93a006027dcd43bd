package descent

import (
	"errors"
	"fmt"
	"math"

	"github.com/devfolio/playground/internal/token"
)

// ErrUnknownSurface is returned by ParseSurface for tokens that name no surface.
var ErrUnknownSurface = errors.New("descent: unknown surface")

// LossFunc evaluates a loss at (x, y) on the unit square.
type LossFunc func(x, y float64) float64

// SurfaceName identifies a built-in loss surface.
type SurfaceName string

// Built-in surfaces.
const (
	Quadratic  SurfaceName = "quadratic"
	Rosenbrock SurfaceName = "rosenbrock"
	Saddle     SurfaceName = "saddle"
	Multimodal SurfaceName = "multimodal"
)

// Surface is a named loss function with its display title.
type Surface struct {
	Name  SurfaceName
	Title string
	Loss  LossFunc
}

// At evaluates the surface at p.
func (s Surface) At(p Point) float64 {
	return s.Loss(p.X, p.Y)
}

var surfaces = []Surface{
	{Name: Quadratic, Title: "Quadratic Bowl", Loss: quadraticLoss},
	{Name: Rosenbrock, Title: "Rosenbrock", Loss: rosenbrockLoss},
	{Name: Saddle, Title: "Saddle Point", Loss: saddleLoss},
	{Name: Multimodal, Title: "Multi-Modal", Loss: multimodalLoss},
}

// Surfaces returns the built-in surfaces in display order.
func Surfaces() []Surface {
	out := make([]Surface, len(surfaces))
	copy(out, surfaces)
	return out
}

// SurfaceNames returns the built-in surface names in display order.
func SurfaceNames() []SurfaceName {
	out := make([]SurfaceName, len(surfaces))
	for i, s := range surfaces {
		out[i] = s.Name
	}
	return out
}

// LookupSurface returns the built-in surface registered under name.
func LookupSurface(name SurfaceName) (Surface, bool) {
	for _, s := range surfaces {
		if s.Name == name {
			return s, true
		}
	}
	return Surface{}, false
}

// ParseSurface resolves a user-supplied token, ignoring case and surrounding space.
func ParseSurface(s string) (Surface, error) {
	name, ok := token.Match(s, SurfaceNames())
	if !ok {
		return Surface{}, fmt.Errorf("%w: %q", ErrUnknownSurface, s)
	}
	surf, _ := LookupSurface(name)
	return surf, nil
}

// quadraticLoss is a bowl with its minimum at the center.
func quadraticLoss(x, y float64) float64 {
	dx := x - 0.5
	dy := y - 0.5
	return dx*dx + dy*dy
}

// rosenbrockLoss is the banana valley mapped from [-2, 2]² and scaled down.
func rosenbrockLoss(x, y float64) float64 {
	sx := x*4 - 2
	sy := y*4 - 2
	a := 1 - sx
	b := sy - sx*sx
	return (a*a + 100*b*b) * 0.001
}

// saddleLoss curves up along x and down along y around the center.
func saddleLoss(x, y float64) float64 {
	sx := (x - 0.5) * 4
	sy := (y - 0.5) * 4
	return (sx*sx-sy*sy)*0.1 + 0.5
}

// multimodalLoss has several local minima on a shallow bowl.
func multimodalLoss(x, y float64) float64 {
	sx := x*6 - 3
	sy := y*6 - 3
	return (math.Sin(sx)*math.Sin(sy)+(sx*sx+sy*sy)*0.05)*0.3 + 0.5
}
