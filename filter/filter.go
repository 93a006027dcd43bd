package filter

import "github.com/devfolio/playground"

// Filter transforms a source image into a destination of the same size.
//
// Apply must not modify src. It writes every pixel it is responsible for and
// leaves the rest of dst untouched. When src or dst is nil, or their sizes
// differ, Apply returns without doing anything.
type Filter interface {
	Apply(src, dst *playground.Pixmap)
}

// Run applies f to src and returns a freshly allocated result.
// The result starts zero-initialized (transparent black) before f writes to it.
// Returns nil when src or f is nil.
func Run(f Filter, src *playground.Pixmap) *playground.Pixmap {
	if f == nil || src == nil {
		return nil
	}
	dst := playground.NewPixmap(src.Width(), src.Height())
	f.Apply(src, dst)
	return dst
}

// IdentityFilter copies the source unchanged.
type IdentityFilter struct{}

// Apply copies src into dst.
func (IdentityFilter) Apply(src, dst *playground.Pixmap) {
	if !compatible(src, dst) {
		return
	}
	copy(dst.Data(), src.Data())
}

// compatible reports whether src and dst can be used together.
func compatible(src, dst *playground.Pixmap) bool {
	return src != nil && dst != nil && src.SameSize(dst)
}

// clampIndex clamps a coordinate to [0, n-1] (edge replication).
func clampIndex(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
