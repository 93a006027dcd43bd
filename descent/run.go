package descent

import "math"

// Run is one optimizer trajectory on a surface.
//
// The path is append-only and starts with the seed. A run stops advancing
// once the gradient magnitude at its latest point drops below the tolerance
// or its path reaches the length cap; after that Step leaves it unchanged.
type Run struct {
	kind    Kind
	rule    Rule
	surface Surface
	cfg     Config

	path []Point
	grad Point
	done bool
}

// NewRun starts a run of kind k from seed on s. The seed is clamped to the
// unit square; it is not subject to the step bounds.
func NewRun(k Kind, seed Point, s Surface, cfg Config) (*Run, error) {
	if s.Loss == nil {
		return nil, ErrNoLoss
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rule, err := NewRule(k, cfg)
	if err != nil {
		return nil, err
	}
	return newRun(k, rule, seed, s, cfg), nil
}

func newRun(k Kind, rule Rule, seed Point, s Surface, cfg Config) *Run {
	r := &Run{
		kind:    k,
		rule:    rule,
		surface: s,
		cfg:     cfg,
		path:    make([]Point, 1, cfg.MaxPath),
	}
	r.path[0] = seed.Clamp(0, 1)
	r.observe()
	return r
}

// Kind returns the update rule of the run.
func (r *Run) Kind() Kind { return r.kind }

// Rule returns the update rule state.
func (r *Run) Rule() Rule { return r.rule }

// Current returns the latest point of the path.
func (r *Run) Current() Point {
	return r.path[len(r.path)-1]
}

// Path returns a copy of every point visited, seed first.
func (r *Run) Path() []Point {
	out := make([]Point, len(r.path))
	copy(out, r.path)
	return out
}

// Len returns the number of points in the path.
func (r *Run) Len() int { return len(r.path) }

// Steps returns the number of updates applied.
func (r *Run) Steps() int { return len(r.path) - 1 }

// Gradient returns the estimated gradient at the latest point.
func (r *Run) Gradient() Point { return r.grad }

// Loss returns the loss at the latest point.
func (r *Run) Loss() float64 { return r.surface.At(r.Current()) }

// Converged reports whether the gradient magnitude at the latest point is
// below the tolerance.
func (r *Run) Converged() bool {
	return r.grad.Norm() < r.cfg.Tolerance
}

// Done reports whether the run has stopped advancing: converged, capped,
// or stuck on a non-finite gradient.
func (r *Run) Done() bool { return r.done }

// Step applies one update and reports whether the path grew.
func (r *Run) Step() bool {
	if r.done {
		return false
	}

	next := r.rule.Step(r.Current(), r.grad).Clamp(r.cfg.ClampMin, r.cfg.ClampMax)
	r.path = append(r.path, next)
	r.observe()
	return true
}

// setLearningRate applies lr to every later step of the run.
func (r *Run) setLearningRate(lr float64) {
	r.cfg.LearningRate = lr
	r.rule.SetLearningRate(lr)
}

// observe estimates the gradient at the latest point and updates done.
func (r *Run) observe() {
	r.grad = Gradient(r.surface.Loss, r.Current(), r.cfg.GradientStep)
	mag := r.grad.Norm()
	r.done = len(r.path) >= r.cfg.MaxPath ||
		mag < r.cfg.Tolerance ||
		math.IsNaN(mag) || math.IsInf(mag, 0)
}
