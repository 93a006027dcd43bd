package plot

import (
	"time"

	"github.com/devfolio/playground"
	"github.com/devfolio/playground/descent"
	"github.com/devfolio/playground/internal/cache"
)

// sampleStride is the lattice step used to find the loss range.
const sampleStride = 4

// DefaultBackgrounds is the number of surface backgrounds a Renderer keeps.
const DefaultBackgrounds = 8

// Render draws the simulator state into a new width x height pixmap:
// heatmap, contour dots, every run's path with its gradient arrow, and the
// surface title. Non-positive sizes produce an empty pixmap.
func Render(sim *descent.Simulator, theme Theme, width, height int) *playground.Pixmap {
	start := time.Now()
	img := background(sim.Surface(), theme, width, height)
	finish(img, sim, theme)
	logRender(sim.Surface(), theme, img, start, false)
	return img
}

type backgroundKey struct {
	surface descent.SurfaceName
	theme   Theme
	width   int
	height  int
}

// Renderer draws frames like Render but reuses the heatmap and contours of
// surfaces it has already drawn. Backgrounds are keyed by surface name.
//
// A Renderer is safe for concurrent use.
type Renderer struct {
	backgrounds *cache.Cache[backgroundKey, *playground.Pixmap]
}

// NewRenderer creates a renderer keeping about capacity backgrounds.
// A non-positive capacity selects DefaultBackgrounds.
func NewRenderer(capacity int) *Renderer {
	if capacity <= 0 {
		capacity = DefaultBackgrounds
	}
	return &Renderer{backgrounds: cache.New[backgroundKey, *playground.Pixmap](capacity)}
}

// Render draws the simulator state into a new pixmap. The result is
// identical to the package-level Render.
func (r *Renderer) Render(sim *descent.Simulator, theme Theme, width, height int) *playground.Pixmap {
	start := time.Now()
	surface := sim.Surface()
	key := backgroundKey{surface: surface.Name, theme: theme, width: width, height: height}

	cached := true
	bg := r.backgrounds.GetOrCreate(key, func() *playground.Pixmap {
		cached = false
		return background(surface, theme, width, height)
	})
	img := bg.Clone()
	finish(img, sim, theme)
	logRender(surface, theme, img, start, cached)
	return img
}

// Backgrounds returns the number of cached backgrounds.
func (r *Renderer) Backgrounds() int { return r.backgrounds.Len() }

func background(surface descent.Surface, theme Theme, width, height int) *playground.Pixmap {
	field := descent.Sample(surface, width, height, sampleStride)
	img := Heatmap(field, theme)
	Contours(img, field, theme, DefaultLevels)
	return img
}

func finish(img *playground.Pixmap, sim *descent.Simulator, theme Theme) {
	Paths(img, sim.Frame())
	Title(img, sim.Surface().Title, theme)
}

func logRender(surface descent.Surface, theme Theme, img *playground.Pixmap, start time.Time, cached bool) {
	playground.Logger().Debug("plot: rendered",
		"surface", surface.Name,
		"theme", theme,
		"width", img.Width(),
		"height", img.Height(),
		"cached", cached,
		"elapsed", time.Since(start))
}
