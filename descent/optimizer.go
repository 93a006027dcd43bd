package descent

import (
	"errors"
	"fmt"
	"math"

	"github.com/devfolio/playground/internal/token"
)

// ErrUnknownOptimizer is returned by ParseKind for tokens that name no update rule.
var ErrUnknownOptimizer = errors.New("descent: unknown optimizer")

// Kind identifies an update rule.
type Kind string

// Update rules.
const (
	Plain    Kind = "plain"
	Momentum Kind = "momentum"
	Adaptive Kind = "adaptive"
)

var kinds = []Kind{Plain, Momentum, Adaptive}

// Kinds returns every update rule in comparison order.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// kindAliases maps the conventional optimizer names onto Kind.
var kindAliases = map[string]Kind{
	"sgd":  Plain,
	"adam": Adaptive,
}

// ParseKind resolves a user-supplied token, ignoring case and surrounding space.
// "sgd" and "adam" are accepted as aliases.
func ParseKind(s string) (Kind, error) {
	if k, ok := token.Match(s, kinds); ok {
		return k, nil
	}
	if k, ok := kindAliases[token.Fold(s)]; ok {
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOptimizer, s)
}

// Rule computes the next position of a run from its current position and
// the gradient there. Rules keep their own state between steps and do not
// clamp; the run does.
type Rule interface {
	Step(pos, grad Point) Point

	// SetLearningRate changes the rate used by later steps without
	// touching accumulated state.
	SetLearningRate(lr float64)

	// Reset clears accumulated state.
	Reset()
}

// NewRule creates the update rule for k with the hyperparameters in cfg.
func NewRule(k Kind, cfg Config) (Rule, error) {
	switch k {
	case Plain:
		return &SGD{LearningRate: cfg.LearningRate}, nil
	case Momentum:
		return &MomentumRule{LearningRate: cfg.LearningRate, Beta: cfg.Momentum}, nil
	case Adaptive:
		return &Adam{
			LearningRate: cfg.LearningRate,
			Beta1:        cfg.Beta1,
			Beta2:        cfg.Beta2,
			Epsilon:      cfg.Epsilon,
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownOptimizer, string(k))
}

// SGD is plain gradient descent: pos − lr·grad.
type SGD struct {
	LearningRate float64
}

// Step returns pos − lr·grad.
func (s *SGD) Step(pos, grad Point) Point {
	return pos.Sub(grad.Mul(s.LearningRate))
}

// SetLearningRate sets the step size.
func (s *SGD) SetLearningRate(lr float64) { s.LearningRate = lr }

// Reset is a no-op; SGD is stateless.
func (s *SGD) Reset() {}

// MomentumRule is gradient descent with a velocity term:
// v = β·v + lr·grad, pos − v.
type MomentumRule struct {
	LearningRate float64
	Beta         float64

	Velocity Point
}

// Step updates the velocity and moves against it.
func (m *MomentumRule) Step(pos, grad Point) Point {
	m.Velocity = m.Velocity.Mul(m.Beta).Add(grad.Mul(m.LearningRate))
	return pos.Sub(m.Velocity)
}

// SetLearningRate sets the step size.
func (m *MomentumRule) SetLearningRate(lr float64) { m.LearningRate = lr }

// Reset zeroes the velocity.
func (m *MomentumRule) Reset() { m.Velocity = Point{} }

// Adam is adaptive moment estimation with bias correction.
type Adam struct {
	LearningRate float64
	Beta1        float64 // Decay rate of the first moment
	Beta2        float64 // Decay rate of the second moment
	Epsilon      float64 // Added to √v̂ before dividing

	M Point // First moment
	V Point // Second moment
	T int   // Steps taken
}

// Step updates both moments and moves by lr·m̂/(√v̂+ε) per axis.
func (a *Adam) Step(pos, grad Point) Point {
	a.T++
	a.M = a.M.Mul(a.Beta1).Add(grad.Mul(1 - a.Beta1))
	a.V = a.V.Mul(a.Beta2).Add(Point{grad.X * grad.X, grad.Y * grad.Y}.Mul(1 - a.Beta2))

	mHat, vHat := a.Corrected()
	return Point{
		X: pos.X - a.LearningRate*mHat.X/(math.Sqrt(vHat.X)+a.Epsilon),
		Y: pos.Y - a.LearningRate*mHat.Y/(math.Sqrt(vHat.Y)+a.Epsilon),
	}
}

// Corrected returns the bias-corrected moments m̂ = m/(1−β1^t) and
// v̂ = v/(1−β2^t). Before the first step both are zero.
func (a *Adam) Corrected() (mHat, vHat Point) {
	if a.T == 0 {
		return Point{}, Point{}
	}
	t := float64(a.T)
	c1 := 1 - math.Pow(a.Beta1, t)
	c2 := 1 - math.Pow(a.Beta2, t)
	return Point{a.M.X / c1, a.M.Y / c1}, Point{a.V.X / c2, a.V.Y / c2}
}

// SetLearningRate sets the step size.
func (a *Adam) SetLearningRate(lr float64) { a.LearningRate = lr }

// Reset zeroes both moments and the step counter.
func (a *Adam) Reset() {
	a.M = Point{}
	a.V = Point{}
	a.T = 0
}
