package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/devfolio/playground"
	"github.com/devfolio/playground/descent"
	"github.com/devfolio/playground/filter"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() { playground.SetLogger(nil) })
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func writeTestImage(t *testing.T, size int) string {
	t.Helper()
	pm := playground.NewPixmap(size, size)
	for y := range size {
		for x := range size {
			pm.SetRGBA8(x, y, uint8(x*16), uint8(y*16), 128, 255)
		}
	}
	path := filepath.Join(t.TempDir(), "in.png")
	if err := pm.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	return path
}

func TestRunNoArgs(t *testing.T) {
	_, stderr, err := runCLI(t)
	if !errors.Is(err, errUsage) {
		t.Errorf("err = %v, want errUsage", err)
	}
	if !strings.Contains(stderr, "usage: playground") {
		t.Errorf("stderr = %q, want usage text", stderr)
	}
}

func TestRunUnknownCommand(t *testing.T) {
	_, _, err := runCLI(t, "paint")
	if err == nil || !strings.Contains(err.Error(), `"paint"`) {
		t.Errorf("err = %v, want unknown command", err)
	}
}

func TestRunBadFlag(t *testing.T) {
	_, stderr, err := runCLI(t, "descent", "-bogus")
	if !errors.Is(err, errUsage) {
		t.Errorf("err = %v, want errUsage", err)
	}
	if !strings.Contains(stderr, "-bogus") {
		t.Errorf("stderr = %q, want flag error", stderr)
	}
}

func TestRunHelpFlag(t *testing.T) {
	for _, cmd := range []string{"filters", "filter", "descent"} {
		t.Run(cmd, func(t *testing.T) {
			stdout, stderr, err := runCLI(t, cmd, "-h")
			if err != nil {
				t.Errorf("%s -h: err = %v, want nil", cmd, err)
			}
			if !strings.Contains(stderr, "-v") {
				t.Errorf("%s -h: stderr = %q, want flag listing", cmd, stderr)
			}
			if stdout != "" {
				t.Errorf("%s -h: command ran, stdout = %q", cmd, stdout)
			}
		})
	}
}

func TestRunFilters(t *testing.T) {
	stdout, _, err := runCLI(t, "filters")
	if err != nil {
		t.Fatalf("filters: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	names := filter.Names()
	if len(lines) != len(names) {
		t.Fatalf("got %d lines, want %d", len(lines), len(names))
	}
	for i, n := range names {
		if !strings.HasPrefix(lines[i], string(n)+" ") {
			t.Errorf("line %d = %q, want prefix %q", i, lines[i], n)
		}
	}
	if !strings.Contains(stdout, "Sobel") {
		t.Errorf("stdout missing titles: %q", stdout)
	}
}

func TestRunFilterSingle(t *testing.T) {
	in := writeTestImage(t, 16)
	out := filepath.Join(t.TempDir(), "edges.png")

	stdout, _, err := runCLI(t, "filter", "-in", in, "-filter", "Invert", "-size", "16", "-out", out)
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if !strings.Contains(stdout, "invert -> ") {
		t.Errorf("stdout = %q", stdout)
	}

	got, err := playground.LoadPixmap(out, 16, 16)
	if err != nil {
		t.Fatalf("LoadPixmap: %v", err)
	}
	r, g, b, a := got.RGBA8(2, 3)
	if r != 255-32 || g != 255-48 || b != 127 || a != 255 {
		t.Errorf("pixel (2,3) = (%d,%d,%d,%d), want (223,207,127,255)", r, g, b, a)
	}
}

func TestRunFilterAll(t *testing.T) {
	in := writeTestImage(t, 16)
	dir := filepath.Join(t.TempDir(), "frames")

	if _, _, err := runCLI(t, "filter", "-in", in, "-size", "16", "-all", dir); err != nil {
		t.Fatalf("filter -all: %v", err)
	}
	for _, n := range filter.Names() {
		if _, err := os.Stat(filepath.Join(dir, string(n)+".png")); err != nil {
			t.Errorf("missing output for %s: %v", n, err)
		}
	}
}

func TestRunFilterErrors(t *testing.T) {
	in := writeTestImage(t, 16)
	tests := []struct {
		name string
		args []string
	}{
		{"missing input flag", []string{"filter"}},
		{"missing file", []string{"filter", "-in", filepath.Join(t.TempDir(), "none.png")}},
		{"unknown filter", []string{"filter", "-in", in, "-size", "16", "-filter", "blurry"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := runCLI(t, tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRunDescent(t *testing.T) {
	stdout, _, err := runCLI(t, "descent", "-seed", "0.1,0.9")
	if err != nil {
		t.Fatalf("descent: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), stdout)
	}
	if lines[0] != "Quadratic Bowl" {
		t.Errorf("title = %q", lines[0])
	}
	fields := strings.Fields(lines[2])
	if fields[0] != "plain" || fields[1] != "173" || fields[2] != "true" {
		t.Errorf("row = %q, want plain 173 true", lines[2])
	}
}

func TestRunDescentCompare(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")
	stdout, _, err := runCLI(t, "descent", "-compare", "-size", "64", "-out", out)
	if err != nil {
		t.Fatalf("descent: %v", err)
	}

	want := map[string]string{"plain": "173", "momentum": "72", "adaptive": "24"}
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	for _, line := range lines[2 : 2+len(want)] {
		fields := strings.Fields(line)
		if steps, ok := want[fields[0]]; !ok || fields[1] != steps {
			t.Errorf("row %q, want %s steps", line, steps)
		}
	}
	if !strings.HasSuffix(lines[len(lines)-1], out) {
		t.Errorf("last line = %q, want frame path", lines[len(lines)-1])
	}

	frame, err := playground.LoadPixmap(out, 64, 64)
	if err != nil {
		t.Fatalf("LoadPixmap: %v", err)
	}
	if frame.Width() != 64 || frame.Height() != 64 {
		t.Errorf("frame = %dx%d, want 64x64", frame.Width(), frame.Height())
	}
}

func TestRunDescentErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown surface", []string{"descent", "-surface", "bowl"}},
		{"unknown optimizer", []string{"descent", "-optimizer", "lbfgs"}},
		{"bad seed", []string{"descent", "-seed", "0.5"}},
		{"bad theme", []string{"descent", "-theme", "blue"}},
		{"bad learning rate", []string{"descent", "-lr", "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := runCLI(t, tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRunDescentCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var stdout, stderr bytes.Buffer
	err := run(ctx, []string{"descent"}, &stdout, &stderr)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestParseSeed(t *testing.T) {
	tests := []struct {
		in      string
		want    descent.Point
		wantErr bool
	}{
		{"0.1,0.9", descent.Pt(0.1, 0.9), false},
		{" 0.5 , 0.25 ", descent.Pt(0.5, 0.25), false},
		{"1,0", descent.Pt(1, 0), false},
		{"0.5", descent.Point{}, true},
		{"a,0.5", descent.Point{}, true},
		{"0.5,b", descent.Point{}, true},
	}
	for _, tt := range tests {
		got, err := parseSeed(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseSeed(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseSeed(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRunDescentFrames(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "anim")
	stdout, _, err := runCLI(t, "descent", "-optimizer", "adam", "-size", "32", "-every", "10", "-frames", dir)
	if err != nil {
		t.Fatalf("descent: %v", err)
	}
	// 24 adaptive steps: the start, steps 10 and 20, and the final state.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 4 {
		t.Errorf("wrote %d frames, want 4", len(entries))
	}
	if !strings.HasPrefix(stdout, "4 frames -> ") {
		t.Errorf("stdout = %q", stdout)
	}
}
