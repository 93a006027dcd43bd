package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/devfolio/playground"
	"github.com/devfolio/playground/filter"
)

// runFilters prints the registered filters with their titles.
func runFilters(args []string, stdout, stderr io.Writer) error {
	fs, verbose := newFlagSet("filters", stderr)
	if err := parseFlags(fs, verbose, args, stderr); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	for _, n := range filter.Names() {
		info, _ := filter.Describe(n)
		fmt.Fprintf(tw, "%s\t%s\n", n, info.Title)
	}
	return tw.Flush()
}

// runFilter loads an image, fits it to the frame and writes one filtered
// result or, with -all, every filter into a directory.
func runFilter(args []string, stdout, stderr io.Writer) error {
	fs, verbose := newFlagSet("filter", stderr)
	in := fs.String("in", "", "input image (png, jpeg, gif, bmp, tiff, webp)")
	name := fs.String("filter", string(filter.Sobel), "filter to apply")
	out := fs.String("out", "", "output file (default <filter>.png)")
	all := fs.String("all", "", "write every filter into this directory")
	size := fs.Int("size", filter.FrameSize, "frame side length in pixels")
	workers := fs.Int("workers", 0, "filters rendered at once with -all (0 = GOMAXPROCS)")
	if err := parseFlags(fs, verbose, args, stderr); err != nil {
		return err
	}
	if *in == "" {
		fs.Usage()
		return errors.New("filter: -in is required")
	}

	src, err := playground.LoadPixmap(*in, *size, *size)
	if err != nil {
		return err
	}
	engine := filter.NewEngine(filter.WithSize(*size, *size), filter.WithWorkers(*workers))
	if err := engine.Load(src); err != nil {
		return err
	}

	if *all != "" {
		return writeAll(engine, *all, stdout)
	}

	n, err := filter.ParseName(*name)
	if err != nil {
		return err
	}
	path := *out
	if path == "" {
		path = string(n) + ".png"
	}
	if err := engine.Apply(n).Save(path); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s -> %s\n", n, path)
	return nil
}

func writeAll(engine *filter.Engine, dir string, stdout io.Writer) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("filter: create directory: %w", err)
	}
	results := engine.ApplyAll()
	for _, n := range filter.Names() {
		path := filepath.Join(dir, string(n)+".png")
		if err := results[n].Save(path); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s -> %s\n", n, path)
	}
	return nil
}
