// Package color provides the channel arithmetic shared by the filter engine
// and the plot renderer: 8-bit clamping and BT.601 luminance.
package color

import "math"

// ClampU8 rounds v to the nearest integer (ties to even) and clamps it to [0, 255].
// NaN maps to 0.
func ClampU8(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.RoundToEven(v))
}

// Min255 returns v capped at 255, leaving smaller values untouched.
func Min255(v float64) float64 {
	if v > 255 {
		return 255
	}
	return v
}
