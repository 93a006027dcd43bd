// Package descent simulates gradient-based optimizers on small 2D loss surfaces.
//
// A [Simulator] holds one selected [Surface] and zero or more independent
// [Run] values. Each call to [Simulator.Step] advances every unconverged run
// by one update of its [Rule]; the caller decides when (and whether) to call
// it again, typically once per rendered frame. Nothing in the package starts
// goroutines or timers.
//
// Gradients are estimated numerically with a central finite difference, so
// any scalar function of (x, y) on the unit square can serve as a surface.
//
//	surface, _ := descent.LookupSurface(descent.Rosenbrock)
//	sim, err := descent.NewSimulator(descent.WithSurface(surface), descent.WithCompare(true))
//	if err != nil {
//		return err
//	}
//	sim.Start(descent.Point{X: 0.1, Y: 0.9})
//	for sim.Step() {
//	}
//	for _, r := range sim.Runs() {
//		fmt.Println(r.Kind(), r.Len(), r.Converged())
//	}
package descent
