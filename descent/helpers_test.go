package descent

import (
	"math"
	"testing"
)

// Test helper functions shared across descent tests.

// surfaceFor returns a built-in surface or fails the test.
func surfaceFor(t testing.TB, name SurfaceName) Surface {
	t.Helper()
	s, ok := LookupSurface(name)
	if !ok {
		t.Fatalf("LookupSurface(%q) failed", name)
	}
	return s
}

// newTestSimulator creates a simulator or fails the test.
func newTestSimulator(t testing.TB, opts ...Option) *Simulator {
	t.Helper()
	s, err := NewSimulator(opts...)
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}
	return s
}

// runToEnd steps r until it stops and returns the number of updates applied.
func runToEnd(r *Run) int {
	n := 0
	for r.Step() {
		n++
	}
	return n
}

// near reports whether a and b differ by at most tol.
func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
