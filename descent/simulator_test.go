package descent

import (
	"context"
	"errors"
	"testing"
)

func TestSimulatorCompareOrdering(t *testing.T) {
	s := newTestSimulator(t, WithCompare(true))
	s.Start(Pt(0.1, 0.9))

	if _, err := Simulate(context.Background(), s); err != nil {
		t.Fatalf("Simulate: %v", err)
	}

	runs := s.Runs()
	if len(runs) != 3 {
		t.Fatalf("len(Runs()) = %d, want 3", len(runs))
	}
	steps := make(map[Kind]int)
	for i, r := range runs {
		if r.Kind() != Kinds()[i] {
			t.Errorf("run %d kind = %q, want %q", i, r.Kind(), Kinds()[i])
		}
		if !r.Converged() {
			t.Errorf("%s did not converge: %v", r.Kind(), r.Gradient())
		}
		if r.Path()[0] != Pt(0.1, 0.9) {
			t.Errorf("%s seed = %v", r.Kind(), r.Path()[0])
		}
		steps[r.Kind()] = r.Len()
	}

	if steps[Momentum] > steps[Plain] || steps[Adaptive] > steps[Plain] {
		t.Errorf("steps plain=%d momentum=%d adaptive=%d; want momentum and adaptive <= plain",
			steps[Plain], steps[Momentum], steps[Adaptive])
	}
}

func TestSimulatorSingleRun(t *testing.T) {
	s := newTestSimulator(t, WithOptimizer(Adaptive))
	if s.Active() || s.Step() {
		t.Error("simulator without runs should be inactive")
	}

	s.Start(Pt(0.9, 0.9))
	runs := s.Runs()
	if len(runs) != 1 || runs[0].Kind() != Adaptive {
		t.Fatalf("Runs() = %d runs, want one adaptive run", len(runs))
	}
	if !s.Active() {
		t.Fatal("simulator should be active after Start")
	}

	n, err := Simulate(context.Background(), s)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if n != runs[0].Steps() {
		t.Errorf("Simulate = %d steps, run took %d", n, runs[0].Steps())
	}
	if s.Active() || s.Step() {
		t.Error("simulator should be finished")
	}
}

func TestSimulatorStepSkipsFinishedRuns(t *testing.T) {
	s := newTestSimulator(t, WithCompare(true))
	s.Start(Pt(0.1, 0.9))
	runs := s.Runs()
	plain, adaptive := runs[0], runs[2]

	for !adaptive.Done() {
		if !s.Step() {
			t.Fatal("simulator stalled before the adaptive run finished")
		}
	}
	if plain.Done() {
		t.Fatal("plain run finished before the adaptive run")
	}

	plainLen, adaptiveLen := plain.Len(), adaptive.Len()
	for i := 0; i < 10; i++ {
		if !s.Step() {
			t.Fatalf("step %d reported no progress", i)
		}
	}
	if adaptive.Len() != adaptiveLen {
		t.Errorf("finished run grew from %d to %d", adaptiveLen, adaptive.Len())
	}
	if plain.Len() != plainLen+10 {
		t.Errorf("plain run Len() = %d, want %d", plain.Len(), plainLen+10)
	}
}

func TestSimulatorSeedAtFixedPoint(t *testing.T) {
	s := newTestSimulator(t, WithSurface(surfaceFor(t, Saddle)), WithCompare(true))
	s.Start(Pt(0.5, 0.5))
	if s.Active() || s.Step() {
		t.Error("runs seeded at the saddle point should be finished")
	}
}

func TestSimulatorSetSurfaceDiscardsRuns(t *testing.T) {
	s := newTestSimulator(t)
	s.Start(Pt(0.2, 0.2))
	s.Step()

	if err := s.SetSurface(surfaceFor(t, Multimodal)); err != nil {
		t.Fatalf("SetSurface: %v", err)
	}
	if len(s.Runs()) != 0 || s.Active() {
		t.Error("SetSurface should discard runs")
	}
	if s.Surface().Name != Multimodal {
		t.Errorf("Surface() = %q", s.Surface().Name)
	}
	if err := s.SetSurface(Surface{}); !errors.Is(err, ErrNoLoss) {
		t.Errorf("SetSurface(empty) = %v, want ErrNoLoss", err)
	}
}

func TestSimulatorSetOptimizerLeavesCompare(t *testing.T) {
	s := newTestSimulator(t, WithCompare(true))
	s.Start(Pt(0.2, 0.2))

	if err := s.SetOptimizer(Momentum); err != nil {
		t.Fatalf("SetOptimizer: %v", err)
	}
	if s.Compare() {
		t.Error("SetOptimizer should leave compare mode")
	}
	if len(s.Runs()) != 3 {
		t.Error("SetOptimizer should keep runs in progress")
	}

	s.Start(Pt(0.2, 0.2))
	if runs := s.Runs(); len(runs) != 1 || runs[0].Kind() != Momentum {
		t.Errorf("Start after SetOptimizer gave %d runs", len(runs))
	}

	if err := s.SetOptimizer("rmsprop"); !errors.Is(err, ErrUnknownOptimizer) {
		t.Errorf("SetOptimizer(rmsprop) = %v, want ErrUnknownOptimizer", err)
	}
	if s.Optimizer() != Momentum {
		t.Errorf("failed SetOptimizer changed the rule to %q", s.Optimizer())
	}
}

func TestSimulatorSetLearningRate(t *testing.T) {
	s := newTestSimulator(t)
	s.Start(Pt(0.9, 0.9))

	if err := s.SetLearningRate(0); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("SetLearningRate(0) = %v, want ErrInvalidConfig", err)
	}
	if err := s.SetLearningRate(0.1); err != nil {
		t.Fatalf("SetLearningRate: %v", err)
	}

	// Gradient of the bowl at (0.9, 0.9) is (0.8, 0.8); one step of 0.1 moves 0.08.
	s.Step()
	got := s.Runs()[0].Current()
	if !near(got.X, 0.82, 1e-9) || !near(got.Y, 0.82, 1e-9) {
		t.Errorf("after one step at lr 0.1: %v, want (0.82, 0.82)", got)
	}
	if s.Config().LearningRate != 0.1 {
		t.Errorf("Config().LearningRate = %v", s.Config().LearningRate)
	}
}

func TestSimulatorReset(t *testing.T) {
	s := newTestSimulator(t, WithCompare(true))
	s.Start(Pt(0.3, 0.3))
	s.Reset()

	if len(s.Runs()) != 0 || s.Active() || s.Compare() {
		t.Error("Reset should drop runs and leave compare mode")
	}
}

func TestSimulatorStartClampsSeed(t *testing.T) {
	s := newTestSimulator(t)
	s.Start(Pt(1.5, -0.5))
	if got := s.Runs()[0].Path()[0]; got != Pt(1, 0) {
		t.Errorf("seed = %v, want (1, 0)", got)
	}
}

func TestSimulatorFrame(t *testing.T) {
	s := newTestSimulator(t, WithCompare(true))
	s.Start(Pt(0.8, 0.3))
	s.Step()
	s.Step()

	frame := s.Frame()
	if len(frame) != 3 {
		t.Fatalf("len(Frame()) = %d, want 3", len(frame))
	}
	for i, tr := range frame {
		r := s.Runs()[i]
		if tr.Kind != r.Kind() || len(tr.Path) != 3 || tr.Gradient != r.Gradient() || tr.Done != r.Done() {
			t.Errorf("trace %d = %+v does not match run", i, tr)
		}
	}
}

func TestSimulateCancelled(t *testing.T) {
	s := newTestSimulator(t)
	s.Start(Pt(0.9, 0.9))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n, err := Simulate(ctx, s)
	if !errors.Is(err, context.Canceled) || n != 0 {
		t.Errorf("Simulate = %d, %v; want 0, context.Canceled", n, err)
	}
	if !s.Active() {
		t.Error("cancelled simulation should leave the runs active")
	}
}

func BenchmarkSimulateCompare(b *testing.B) {
	s := newTestSimulator(b, WithSurface(surfaceFor(b, Multimodal)), WithCompare(true))
	ctx := context.Background()
	for b.Loop() {
		s.Start(Pt(0.2, 0.3))
		_, _ = Simulate(ctx, s)
	}
}
