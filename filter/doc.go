// Package filter implements the image-filter engine of the playground.
//
// This package contains:
//   - Generic 3x3 (any odd size) convolution with edge replication
//   - Gradient-magnitude edge detectors (Sobel, Prewitt, Laplacian) with tinted output
//   - Color matrix point filters (grayscale, sepia, invert)
//   - Binary threshold
//   - A registry mapping filter names to transforms and display metadata
//   - Engine, the session object holding the original and working images
//
// All filters read a source Pixmap and write a destination of the same size.
// A nil or mismatched buffer turns the call into a no-op; filters never fail.
package filter
