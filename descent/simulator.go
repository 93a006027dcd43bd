package descent

import (
	"context"
	"errors"

	"github.com/devfolio/playground"
)

// ErrNoLoss is returned when a surface has no loss function.
var ErrNoLoss = errors.New("descent: surface has no loss function")

// Trace is a snapshot of one run for rendering.
type Trace struct {
	Kind     Kind
	Path     []Point
	Gradient Point
	Done     bool
}

// Simulator holds the selected surface, update rule and compare mode, and
// the runs started from the last seed.
//
// A Simulator is not safe for concurrent use. It never schedules work on its
// own: callers drive it with Step, typically once per frame, while Active
// reports true.
type Simulator struct {
	cfg     Config
	surface Surface
	kind    Kind
	compare bool
	runs    []*Run
}

// NewSimulator creates a simulator with no runs.
// The default is the quadratic surface with plain gradient descent.
func NewSimulator(opts ...Option) (*Simulator, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.cfg.Validate(); err != nil {
		return nil, err
	}
	if o.surface.Loss == nil {
		return nil, ErrNoLoss
	}
	if _, err := NewRule(o.kind, o.cfg); err != nil {
		return nil, err
	}
	return &Simulator{
		cfg:     o.cfg,
		surface: o.surface,
		kind:    o.kind,
		compare: o.compare,
	}, nil
}

// Config returns the numeric constants in use.
func (s *Simulator) Config() Config { return s.cfg }

// Surface returns the selected surface.
func (s *Simulator) Surface() Surface { return s.surface }

// Optimizer returns the update rule used outside compare mode.
func (s *Simulator) Optimizer() Kind { return s.kind }

// Compare reports whether compare mode is on.
func (s *Simulator) Compare() bool { return s.compare }

// SetSurface selects another surface and discards every run.
func (s *Simulator) SetSurface(surface Surface) error {
	if surface.Loss == nil {
		return ErrNoLoss
	}
	s.surface = surface
	s.runs = nil
	playground.Logger().Debug("descent: surface selected", "surface", surface.Name)
	return nil
}

// SetOptimizer selects the update rule for the next Start and leaves
// compare mode. Runs already in progress keep their rules.
func (s *Simulator) SetOptimizer(k Kind) error {
	if _, err := NewRule(k, s.cfg); err != nil {
		return err
	}
	s.kind = k
	s.compare = false
	playground.Logger().Debug("descent: optimizer selected", "optimizer", k)
	return nil
}

// SetCompare turns compare mode on or off for the next Start.
func (s *Simulator) SetCompare(on bool) {
	s.compare = on
}

// SetLearningRate changes the step size for new runs and for the next steps
// of the current ones.
func (s *Simulator) SetLearningRate(lr float64) error {
	cfg := s.cfg
	cfg.LearningRate = lr
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.cfg = cfg
	for _, r := range s.runs {
		r.setLearningRate(lr)
	}
	return nil
}

// Start discards previous runs and starts new ones from seed: one per
// update rule in compare mode, otherwise one with the selected rule.
// The seed is clamped to the unit square.
func (s *Simulator) Start(seed Point) {
	kinds := []Kind{s.kind}
	if s.compare {
		kinds = Kinds()
	}

	s.runs = make([]*Run, 0, len(kinds))
	for _, k := range kinds {
		// Kinds are checked by NewSimulator and SetOptimizer.
		rule, _ := NewRule(k, s.cfg)
		s.runs = append(s.runs, newRun(k, rule, seed, s.surface, s.cfg))
	}

	playground.Logger().Debug("descent: started",
		"surface", s.surface.Name,
		"seed", seed.Clamp(0, 1),
		"runs", len(s.runs),
		"compare", s.compare)
}

// Step advances every run that is still active by one update and reports
// whether any path grew. Finished runs are left as they are.
func (s *Simulator) Step() bool {
	moved := false
	for _, r := range s.runs {
		if r.Step() {
			moved = true
		}
	}
	if moved && !s.Active() {
		s.logFinished()
	}
	return moved
}

// Active reports whether any run can still advance.
func (s *Simulator) Active() bool {
	for _, r := range s.runs {
		if !r.Done() {
			return true
		}
	}
	return false
}

// Runs returns the current runs in start order.
func (s *Simulator) Runs() []*Run {
	out := make([]*Run, len(s.runs))
	copy(out, s.runs)
	return out
}

// Frame returns a snapshot of every run for rendering.
func (s *Simulator) Frame() []Trace {
	out := make([]Trace, len(s.runs))
	for i, r := range s.runs {
		out[i] = Trace{
			Kind:     r.Kind(),
			Path:     r.Path(),
			Gradient: r.Gradient(),
			Done:     r.Done(),
		}
	}
	return out
}

// Reset discards every run and leaves compare mode.
func (s *Simulator) Reset() {
	s.runs = nil
	s.compare = false
}

func (s *Simulator) logFinished() {
	args := []any{"surface", s.surface.Name}
	for _, r := range s.runs {
		args = append(args, string(r.Kind()), r.Steps())
	}
	playground.Logger().Info("descent: finished", args...)
}

// Simulate drives s until no run is active and returns the number of
// Step calls that moved a run. It checks ctx between steps.
func Simulate(ctx context.Context, s *Simulator) (int, error) {
	steps := 0
	for s.Active() {
		if err := ctx.Err(); err != nil {
			return steps, err
		}
		if !s.Step() {
			break
		}
		steps++
	}
	return steps, nil
}
