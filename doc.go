// Package playground holds the numeric core of an interactive machine-learning
// playground: an image-filter engine working on a fixed 280x280 profile
// picture and a gradient-descent simulator comparing optimizer trajectories
// on synthetic loss surfaces.
//
// # Overview
//
// The root package provides the shared pixel buffer ([Pixmap]) and the
// package logger. The algorithms live in sub-packages:
//
//   - filter: convolution kernels, edge detectors, color-matrix point filters
//     and a session filter.Engine holding the original and working images
//   - descent: loss surfaces, finite-difference gradients, plain/momentum/adaptive
//     update rules and a session descent.Simulator stepped by the caller
//   - plot: rendering of loss surfaces and optimizer paths into a Pixmap
//
// # Quick Start
//
//	src, err := playground.LoadPixmap("profile.jpg", filter.FrameSize, filter.FrameSize)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	eng := filter.NewEngine()
//	if err := eng.Load(src); err != nil {
//	    log.Fatal(err)
//	}
//	edges := eng.Apply(filter.Sobel)
//	_ = edges.SavePNG("edges.png")
//
//	sim, _ := descent.NewSimulator(descent.WithCompare(true))
//	sim.Start(descent.Point{X: 0.1, Y: 0.9})
//	for sim.Active() {
//	    sim.Step()
//	}
//
// # Logging
//
// Nothing is logged by default. Use [SetLogger] to route diagnostics into any
// [log/slog] handler.
package playground
