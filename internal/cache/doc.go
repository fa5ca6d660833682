// Package cache provides the bounded LRU memo behind gradclip.ParseCache.
//
// Parsing a stored gradient is repeated every time an editing session is
// reopened for the same element, so results are memoized per (css, box)
// key. The cache is an explicit object owned by the caller; Purge drops
// everything when the host invalidates stored styles.
//
//	c := cache.New[string, int](64)
//	c.Set("key", 42)
//	value, ok := c.Get("key")
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
