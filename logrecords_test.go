package playground_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/devfolio/playground"
	"github.com/devfolio/playground/descent"
	"github.com/devfolio/playground/filter"
)

type logEntry struct {
	level   slog.Level
	message string
	attrs   map[string]slog.Value
}

// recorder is a slog.Handler that keeps every record at any level.
type recorder struct {
	mu      sync.Mutex
	entries []logEntry
}

func (r *recorder) Enabled(context.Context, slog.Level) bool { return true }

func (r *recorder) Handle(_ context.Context, rec slog.Record) error {
	e := logEntry{level: rec.Level, message: rec.Message, attrs: map[string]slog.Value{}}
	rec.Attrs(func(a slog.Attr) bool {
		e.attrs[a.Key] = a.Value
		return true
	})
	r.mu.Lock()
	r.entries = append(r.entries, e)
	r.mu.Unlock()
	return nil
}

func (r *recorder) WithAttrs([]slog.Attr) slog.Handler { return r }
func (r *recorder) WithGroup(string) slog.Handler      { return r }

func (r *recorder) find(message string) []logEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []logEntry
	for _, e := range r.entries {
		if e.message == message {
			out = append(out, e)
		}
	}
	return out
}

func installRecorder(t *testing.T) *recorder {
	t.Helper()
	orig := playground.Logger()
	t.Cleanup(func() { playground.SetLogger(orig) })
	rec := &recorder{}
	playground.SetLogger(slog.New(rec))
	return rec
}

func TestEngineLogsApply(t *testing.T) {
	rec := installRecorder(t)

	e := filter.NewEngine(filter.WithSize(4, 4))
	e.Apply(filter.Sobel)
	if got := rec.find("filter: skipped, no image loaded"); len(got) != 1 || got[0].level != slog.LevelDebug {
		t.Errorf("skip records = %+v, want one Debug record", got)
	}

	if err := e.Load(playground.NewPixmap(4, 4)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	e.Apply(filter.Invert)

	got := rec.find("filter: applied")
	if len(got) != 1 {
		t.Fatalf("got %d \"filter: applied\" records, want 1", len(got))
	}
	if got[0].level != slog.LevelDebug {
		t.Errorf("level = %v, want Debug", got[0].level)
	}
	if v := got[0].attrs["filter"].String(); v != "invert" {
		t.Errorf("filter attr = %q, want invert", v)
	}
	if w := got[0].attrs["width"].Int64(); w != 4 {
		t.Errorf("width attr = %d, want 4", w)
	}
}

func TestSimulatorLogsFinishOnce(t *testing.T) {
	rec := installRecorder(t)

	sim, err := descent.NewSimulator(descent.WithCompare(true))
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}
	sim.Start(descent.Pt(0.1, 0.9))
	for sim.Step() {
		if n := len(rec.find("descent: finished")); n != 0 && sim.Active() {
			t.Fatal("finished logged while a run is still active")
		}
	}
	sim.Step()

	got := rec.find("descent: finished")
	if len(got) != 1 {
		t.Fatalf("got %d \"descent: finished\" records, want 1", len(got))
	}
	if got[0].level != slog.LevelInfo {
		t.Errorf("level = %v, want Info", got[0].level)
	}
	want := map[string]int64{"plain": 173, "momentum": 72, "adaptive": 24}
	for k, steps := range want {
		if v := got[0].attrs[k].Int64(); v != steps {
			t.Errorf("%s steps = %d, want %d", k, v, steps)
		}
	}
	if s := got[0].attrs["surface"].String(); s != "quadratic" {
		t.Errorf("surface attr = %q, want quadratic", s)
	}
}
