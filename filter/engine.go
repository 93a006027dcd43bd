package filter

import (
	"errors"
	"fmt"
	"time"

	"github.com/devfolio/playground"
	"github.com/devfolio/playground/internal/parallel"
)

// FrameSize is the side length of the square image the engine works on.
const FrameSize = 280

// Engine errors.
var (
	// ErrNoImage is returned by Load when given a nil image.
	ErrNoImage = errors.New("filter: no image")

	// ErrSize is returned by Load when the image does not match the engine frame.
	ErrSize = errors.New("filter: image size does not match frame")
)

// EngineOption configures an Engine during creation.
type EngineOption func(*engineOptions)

type engineOptions struct {
	width   int
	height  int
	workers int
}

func defaultEngineOptions() engineOptions {
	return engineOptions{width: FrameSize, height: FrameSize}
}

// WithWorkers bounds how many filters ApplyAll renders at once.
// Zero or negative selects GOMAXPROCS.
func WithWorkers(n int) EngineOption {
	return func(o *engineOptions) {
		o.workers = n
	}
}

// WithSize sets the frame dimensions accepted by Load.
// Non-positive values keep the default FrameSize.
func WithSize(width, height int) EngineOption {
	return func(o *engineOptions) {
		if width > 0 {
			o.width = width
		}
		if height > 0 {
			o.height = height
		}
	}
}

// Engine holds one filter session: the immutable original image, the working
// buffer produced by the last application, and the selected filter.
//
// An Engine is not safe for concurrent use. Every method is a no-op until an
// image has been loaded.
type Engine struct {
	width    int
	height   int
	original *playground.Pixmap
	working  *playground.Pixmap
	current  Name
	pool     *parallel.Pool
}

// NewEngine creates an engine with no image loaded.
func NewEngine(opts ...EngineOption) *Engine {
	o := defaultEngineOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{
		width:   o.width,
		height:  o.height,
		current: Original,
		pool:    parallel.NewPool(o.workers),
	}
}

// Width returns the frame width accepted by Load.
func (e *Engine) Width() int { return e.width }

// Height returns the frame height accepted by Load.
func (e *Engine) Height() int { return e.height }

// Load captures src as the session original. The engine keeps its own copy,
// so later changes to src are not observed. The working buffer is reset to the
// original and the selection to Original.
func (e *Engine) Load(src *playground.Pixmap) error {
	if src == nil {
		return ErrNoImage
	}
	if src.Width() != e.width || src.Height() != e.height {
		return fmt.Errorf("%w: got %dx%d, want %dx%d", ErrSize, src.Width(), src.Height(), e.width, e.height)
	}

	e.original = src.Clone()
	e.working = src.Clone()
	e.current = Original

	playground.Logger().Debug("filter: image loaded", "width", e.width, "height", e.height)
	return nil
}

// Loaded reports whether an original image is available.
func (e *Engine) Loaded() bool {
	return e.original != nil
}

// Original returns a copy of the original image, or nil before Load.
func (e *Engine) Original() *playground.Pixmap {
	if e.original == nil {
		return nil
	}
	return e.original.Clone()
}

// Working returns the buffer produced by the last Apply, or nil before Load.
// The buffer is replaced, never mutated, by later calls.
func (e *Engine) Working() *playground.Pixmap {
	return e.working
}

// Current returns the name of the last applied filter.
func (e *Engine) Current() Name {
	return e.current
}

// Info returns the display metadata of the current filter.
func (e *Engine) Info() Info {
	info, _ := Describe(e.current)
	return info
}

// Render computes name applied to the original without changing the session.
// Returns nil when no image is loaded or name is not registered.
func (e *Engine) Render(name Name) *playground.Pixmap {
	if e.original == nil {
		playground.Logger().Debug("filter: skipped, no image loaded", "filter", name)
		return nil
	}

	f, ok := Lookup(name)
	if !ok {
		playground.Logger().Warn("filter: unknown filter", "filter", name)
		return nil
	}

	start := time.Now()
	out := Run(f, e.original)
	playground.Logger().Debug("filter: applied",
		"filter", name,
		"width", out.Width(),
		"height", out.Height(),
		"elapsed", time.Since(start))
	return out
}

// Apply regenerates the working buffer from the original with the named
// filter and makes it current. Returns the new working buffer, or nil with
// the session unchanged when no image is loaded or name is not registered.
func (e *Engine) Apply(name Name) *playground.Pixmap {
	out := e.Render(name)
	if out == nil {
		return nil
	}
	e.working = out
	e.current = name
	return out
}

// ApplyAll renders every registered filter from the original, several at a
// time. The session is left unchanged. Returns nil when no image is loaded.
func (e *Engine) ApplyAll() map[Name]*playground.Pixmap {
	if e.original == nil {
		return nil
	}
	results := make([]*playground.Pixmap, len(names))
	e.pool.For(len(names), func(i int) {
		results[i] = e.Render(names[i])
	})

	out := make(map[Name]*playground.Pixmap, len(names))
	for i, n := range names {
		out[n] = results[i]
	}
	return out
}
