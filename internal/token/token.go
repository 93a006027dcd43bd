// Package token normalizes user-supplied name tokens (filter, surface and
// optimizer names) before lookup.
package token

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fold trims surrounding whitespace and applies Unicode case folding, so
// "Sobel", " SOBEL " and "sobel" compare equal.
func Fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// Match returns the first candidate equal to s after folding.
func Match[T ~string](s string, candidates []T) (T, bool) {
	folded := Fold(s)
	for _, c := range candidates {
		if Fold(string(c)) == folded {
			return c, true
		}
	}
	var zero T
	return zero, false
}
