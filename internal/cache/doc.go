// Package cache provides a small generic LRU cache.
//
// The plot package keeps rendered surface backgrounds here so that drawing
// successive frames of a run only repaints the paths:
//
//	c := cache.New[string, int](8)
//	v := c.GetOrCreate("key", func() int { return 42 })
//
// A Cache is safe for concurrent use and must not be copied after creation.
package cache
