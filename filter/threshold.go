package filter

import (
	"github.com/devfolio/playground"
	"github.com/devfolio/playground/internal/color"
)

// DefaultThreshold is the luminance level separating black from white.
const DefaultThreshold = 128

// ThresholdFilter binarizes an image on its BT.601 luminance.
// Pixels brighter than Level become white, the rest black; alpha is copied.
type ThresholdFilter struct {
	Level float64
}

// NewThresholdFilter creates a threshold filter at DefaultThreshold.
func NewThresholdFilter() *ThresholdFilter {
	return &ThresholdFilter{Level: DefaultThreshold}
}

// Apply binarizes src into dst.
func (f *ThresholdFilter) Apply(src, dst *playground.Pixmap) {
	if !compatible(src, dst) {
		return
	}

	srcData := src.Data()
	dstData := dst.Data()

	for i := 0; i+3 < len(srcData); i += 4 {
		var v uint8
		if color.Luma(srcData[i], srcData[i+1], srcData[i+2]) > f.Level {
			v = 255
		}
		dstData[i+0] = v
		dstData[i+1] = v
		dstData[i+2] = v
		dstData[i+3] = srcData[i+3]
	}
}
