// Package plot draws the state of a descent.Simulator into a pixmap: the
// loss surface as a heatmap with contour dots, one polyline per optimizer run,
// the gradient arrow at each run's latest point, and the surface title.
//
// Coordinates on the unit square map to pixels by scaling with the image
// width and height; (0, 0) is the top-left corner.
//
// For animations use a [Renderer], which keeps the heatmap and contours of
// recently drawn surfaces and only repaints the paths of each new frame.
package plot
