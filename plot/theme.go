package plot

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	icolor "github.com/devfolio/playground/internal/color"
	"github.com/devfolio/playground/internal/token"
)

// ErrUnknownTheme is returned by ParseTheme for tokens that name no theme.
var ErrUnknownTheme = errors.New("plot: unknown theme")

// Theme selects the heatmap ramp and overlay colors.
type Theme int

const (
	// Dark ramps from blue (low loss) through purple to red (high loss).
	Dark Theme = iota

	// Light ramps from green (low loss) through yellow to red (high loss).
	Light
)

// String returns "dark" or "light".
func (t Theme) String() string {
	switch t {
	case Dark:
		return "dark"
	case Light:
		return "light"
	}
	return fmt.Sprintf("Theme(%d)", int(t))
}

// ParseTheme resolves "dark" or "light", ignoring case and surrounding space.
func ParseTheme(s string) (Theme, error) {
	switch token.Fold(s) {
	case "dark":
		return Dark, nil
	case "light":
		return Light, nil
	}
	return Dark, fmt.Errorf("%w: %q", ErrUnknownTheme, s)
}

// Ramp maps a normalized loss n to an opaque heatmap color.
// Values outside [0, 1] saturate per channel.
func (t Theme) Ramp(n float64) color.NRGBA {
	if t == Light {
		return color.NRGBA{
			R: floorU8(n*200 + 55),
			G: floorU8((1-n)*180 + 75),
			B: floorU8((1-n)*100 + 100),
			A: 255,
		}
	}
	return color.NRGBA{
		R: floorU8(n*180 + 20),
		G: floorU8((1-math.Abs(n-0.5)*2)*60 + 20),
		B: floorU8((1-n)*180 + 40),
		A: 255,
	}
}

// contour returns the contour dot color and its opacity.
func (t Theme) contour() (colorful.Color, float64) {
	if t == Light {
		return colorful.Color{}, 0.1
	}
	return colorful.Color{R: 1, G: 1, B: 1}, 0.15
}

// title returns the title text color.
func (t Theme) title() color.NRGBA {
	if t == Light {
		return color.NRGBA{A: 153}
	}
	return color.NRGBA{R: 255, G: 255, B: 255, A: 178}
}

func floorU8(v float64) uint8 {
	return icolor.ClampU8(math.Floor(v))
}
