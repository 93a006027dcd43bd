// Command playground applies the image filters and runs the gradient descent
// simulator from the command line.
//
// Usage:
//
//	playground filters
//	playground filter -in photo.jpg -filter sobel -out sobel.png
//	playground filter -in photo.jpg -all frames/
//	playground descent -surface rosenbrock -compare -seed 0.1,0.9 -out paths.png
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/devfolio/playground"
	"github.com/devfolio/playground/internal/logging"
)

const usageText = `usage: playground <command> [flags]

commands:
  filters   list the available image filters
  filter    apply a filter to an image
  descent   run gradient descent on a loss surface

Run "playground <command> -h" for the flags of a command.
`

// errUsage reports a command line that could not be parsed. The flag
// package has already explained why.
var errUsage = errors.New("invalid usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "playground: %v\n", err)
		}
		os.Exit(2)
	}
}

// run dispatches args to a subcommand.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(stderr, usageText)
		return errUsage
	}

	var err error
	switch args[0] {
	case "filters":
		err = runFilters(args[1:], stdout, stderr)
	case "filter":
		err = runFilter(args[1:], stdout, stderr)
	case "descent":
		err = runDescent(ctx, args[1:], stdout, stderr)
	case "help", "-h", "-help", "--help":
		fmt.Fprint(stdout, usageText)
		return nil
	default:
		fmt.Fprint(stderr, usageText)
		return fmt.Errorf("unknown command %q", args[0])
	}
	// -h has already printed the command's flags.
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	return err
}

// newFlagSet creates a subcommand flag set with the shared -v flag.
func newFlagSet(name string, stderr io.Writer) (*flag.FlagSet, *bool) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "enable debug logging")
	return fs, verbose
}

// parseFlags parses args and installs the console logger. It returns
// flag.ErrHelp for -h so that the command stops without running.
func parseFlags(fs *flag.FlagSet, verbose *bool, args []string, stderr io.Writer) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return errUsage
	}
	setupLogging(stderr, *verbose)
	return nil
}

// setupLogging routes library logs to stderr: warnings by default,
// everything with -v.
func setupLogging(stderr io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	color := false
	if f, ok := stderr.(*os.File); ok && f == os.Stderr {
		fd := f.Fd()
		if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
			stderr = colorable.NewColorableStderr()
			color = true
		}
	}
	playground.SetLogger(logging.NewConsole(stderr, level, color))
}
