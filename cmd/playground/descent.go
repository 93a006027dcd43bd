package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/devfolio/playground/descent"
	"github.com/devfolio/playground/plot"
)

// runDescent runs the simulator from one seed to completion, prints a
// summary per run and optionally renders the final frame.
func runDescent(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	defaults := descent.DefaultConfig()

	fs, verbose := newFlagSet("descent", stderr)
	surfaceName := fs.String("surface", string(descent.Quadratic), "loss surface: quadratic, rosenbrock, saddle, multimodal")
	kindName := fs.String("optimizer", string(descent.Plain), "update rule: plain (sgd), momentum, adaptive (adam)")
	compare := fs.Bool("compare", false, "run every update rule from the same seed")
	lr := fs.Float64("lr", defaults.LearningRate, "learning rate")
	seedText := fs.String("seed", "0.1,0.9", "start point as x,y in [0,1]")
	maxPath := fs.Int("max-path", defaults.MaxPath, "maximum points per path")
	tol := fs.Float64("tol", defaults.Tolerance, "gradient magnitude at which a run converges")
	out := fs.String("out", "", "render the final frame to this image")
	themeName := fs.String("theme", plot.Dark.String(), "render theme: dark or light")
	size := fs.Int("size", 600, "render side length in pixels")
	frames := fs.String("frames", "", "write animation frames into this directory")
	every := fs.Int("every", 10, "steps between animation frames")
	if err := parseFlags(fs, verbose, args, stderr); err != nil {
		return err
	}

	surface, err := descent.ParseSurface(*surfaceName)
	if err != nil {
		return err
	}
	kind, err := descent.ParseKind(*kindName)
	if err != nil {
		return err
	}
	seed, err := parseSeed(*seedText)
	if err != nil {
		return err
	}
	theme, err := plot.ParseTheme(*themeName)
	if err != nil {
		return err
	}

	sim, err := descent.NewSimulator(
		descent.WithSurface(surface),
		descent.WithOptimizer(kind),
		descent.WithCompare(*compare),
		descent.WithLearningRate(*lr),
		descent.WithMaxPath(*maxPath),
		descent.WithTolerance(*tol),
	)
	if err != nil {
		return err
	}

	sim.Start(seed)
	if *frames != "" {
		n, err := writeFrames(ctx, sim, theme, *size, *frames, *every)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%d frames -> %s\n", n, *frames)
	} else if _, err := descent.Simulate(ctx, sim); err != nil {
		return err
	}
	if err := printRuns(stdout, sim); err != nil {
		return err
	}

	if *out != "" {
		if err := plot.Render(sim, theme, *size, *size).Save(*out); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "frame -> %s\n", *out)
	}
	return nil
}

// writeFrames steps sim to completion, rendering the start, every n-th
// step and the final state. Returns the number of frames written.
func writeFrames(ctx context.Context, sim *descent.Simulator, theme plot.Theme, size int, dir string, n int) (int, error) {
	if n <= 0 {
		n = 1
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return 0, fmt.Errorf("descent: create directory: %w", err)
	}

	renderer := plot.NewRenderer(1)
	count := 0
	write := func() error {
		path := filepath.Join(dir, fmt.Sprintf("frame_%04d.png", count))
		if err := renderer.Render(sim, theme, size, size).Save(path); err != nil {
			return err
		}
		count++
		return nil
	}

	if err := write(); err != nil {
		return count, err
	}
	steps := 0
	for sim.Active() {
		if err := ctx.Err(); err != nil {
			return count, err
		}
		if !sim.Step() {
			break
		}
		steps++
		if steps%n == 0 || !sim.Active() {
			if err := write(); err != nil {
				return count, err
			}
		}
	}
	return count, nil
}

func printRuns(w io.Writer, sim *descent.Simulator) error {
	fmt.Fprintf(w, "%s\n", sim.Surface().Title)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "optimizer\tsteps\tconverged\tposition\tloss")
	for _, r := range sim.Runs() {
		fmt.Fprintf(tw, "%s\t%d\t%t\t%s\t%.6f\n",
			r.Kind(), r.Steps(), r.Converged(), r.Current(), r.Loss())
	}
	return tw.Flush()
}

// parseSeed parses "x,y".
func parseSeed(s string) (descent.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return descent.Point{}, fmt.Errorf("seed %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return descent.Point{}, fmt.Errorf("seed %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return descent.Point{}, fmt.Errorf("seed %q: %w", s, err)
	}
	return descent.Pt(x, y), nil
}
