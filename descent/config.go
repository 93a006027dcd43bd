package descent

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is returned by Config.Validate and NewSimulator for
// hyperparameters outside their valid range.
var ErrInvalidConfig = errors.New("descent: invalid config")

// Config holds the numeric constants of a simulation. Changing any of them
// changes the visible convergence behavior.
type Config struct {
	// LearningRate scales every update rule's step.
	LearningRate float64

	// Momentum is the velocity decay β of the momentum rule.
	Momentum float64

	// Beta1, Beta2 and Epsilon parameterize adaptive moment estimation.
	Beta1   float64
	Beta2   float64
	Epsilon float64

	// GradientStep is the finite-difference step h.
	GradientStep float64

	// Tolerance is the gradient magnitude below which a run has converged.
	Tolerance float64

	// MaxPath caps the number of points in a run's path, the seed included.
	MaxPath int

	// ClampMin and ClampMax bound every position produced by a step.
	ClampMin float64
	ClampMax float64
}

// DefaultConfig returns the standard simulation constants.
func DefaultConfig() Config {
	return Config{
		LearningRate: 0.02,
		Momentum:     0.9,
		Beta1:        0.9,
		Beta2:        0.999,
		Epsilon:      1e-8,
		GradientStep: DefaultGradientStep,
		Tolerance:    1e-3,
		MaxPath:      200,
		ClampMin:     0.01,
		ClampMax:     0.99,
	}
}

// Validate reports the first hyperparameter outside its valid range.
func (c Config) Validate() error {
	switch {
	case !positive(c.LearningRate):
		return fmt.Errorf("%w: learning rate %v must be positive", ErrInvalidConfig, c.LearningRate)
	case !unitOpen(c.Momentum):
		return fmt.Errorf("%w: momentum %v must be in [0, 1)", ErrInvalidConfig, c.Momentum)
	case !unitOpen(c.Beta1):
		return fmt.Errorf("%w: beta1 %v must be in [0, 1)", ErrInvalidConfig, c.Beta1)
	case !unitOpen(c.Beta2):
		return fmt.Errorf("%w: beta2 %v must be in [0, 1)", ErrInvalidConfig, c.Beta2)
	case !positive(c.Epsilon):
		return fmt.Errorf("%w: epsilon %v must be positive", ErrInvalidConfig, c.Epsilon)
	case !positive(c.GradientStep):
		return fmt.Errorf("%w: gradient step %v must be positive", ErrInvalidConfig, c.GradientStep)
	case !(c.Tolerance >= 0) || math.IsInf(c.Tolerance, 0):
		return fmt.Errorf("%w: tolerance %v must be non-negative", ErrInvalidConfig, c.Tolerance)
	case c.MaxPath < 1:
		return fmt.Errorf("%w: max path %d must be at least 1", ErrInvalidConfig, c.MaxPath)
	case !(c.ClampMin >= 0 && c.ClampMin < c.ClampMax && c.ClampMax <= 1):
		return fmt.Errorf("%w: bounds [%v, %v] must satisfy 0 <= min < max <= 1", ErrInvalidConfig, c.ClampMin, c.ClampMax)
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func unitOpen(v float64) bool {
	return v >= 0 && v < 1
}

// Option configures a Simulator during creation.
type Option func(*options)

type options struct {
	cfg     Config
	surface Surface
	kind    Kind
	compare bool
}

func defaultOptions() options {
	s, _ := LookupSurface(Quadratic)
	return options{
		cfg:     DefaultConfig(),
		surface: s,
		kind:    Plain,
	}
}

// WithConfig replaces every numeric constant at once.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.cfg = cfg
	}
}

// WithLearningRate sets the step size shared by all update rules.
func WithLearningRate(lr float64) Option {
	return func(o *options) {
		o.cfg.LearningRate = lr
	}
}

// WithMomentum sets the velocity decay of the momentum rule.
func WithMomentum(beta float64) Option {
	return func(o *options) {
		o.cfg.Momentum = beta
	}
}

// WithBetas sets the moment decay rates of adaptive moment estimation.
func WithBetas(beta1, beta2 float64) Option {
	return func(o *options) {
		o.cfg.Beta1 = beta1
		o.cfg.Beta2 = beta2
	}
}

// WithEpsilon sets the denominator guard of adaptive moment estimation.
func WithEpsilon(eps float64) Option {
	return func(o *options) {
		o.cfg.Epsilon = eps
	}
}

// WithGradientStep sets the finite-difference step h.
func WithGradientStep(h float64) Option {
	return func(o *options) {
		o.cfg.GradientStep = h
	}
}

// WithTolerance sets the convergence threshold on the gradient magnitude.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		o.cfg.Tolerance = tol
	}
}

// WithMaxPath sets the path length cap.
func WithMaxPath(n int) Option {
	return func(o *options) {
		o.cfg.MaxPath = n
	}
}

// WithBounds sets the range positions are clamped to after each step.
func WithBounds(lo, hi float64) Option {
	return func(o *options) {
		o.cfg.ClampMin = lo
		o.cfg.ClampMax = hi
	}
}

// WithSurface selects the loss surface.
func WithSurface(s Surface) Option {
	return func(o *options) {
		o.surface = s
	}
}

// WithOptimizer selects the update rule used outside compare mode.
func WithOptimizer(k Kind) Option {
	return func(o *options) {
		o.kind = k
	}
}

// WithCompare enables compare mode: Start launches one run per rule.
func WithCompare(on bool) Option {
	return func(o *options) {
		o.compare = on
	}
}
