package gradclip

import "github.com/gogpu/gradclip/internal/cache"

// ParseCache memoizes parsed gradients by CSS text, box size and codec
// settings. It is an explicit object: the host creates one per document
// and calls Invalidate when stored styles change underneath it.
//
// ParseCache is safe for concurrent use.
type ParseCache struct {
	c *cache.Cache[parseKey, GradientState]
}

type parseKey struct {
	css     string
	box     Box
	handles HandleFractions
	policy  StopPolicy
}

// CacheStats is a snapshot of ParseCache counters.
type CacheStats struct {
	Len      int
	Capacity int
	Hits     uint64
	Misses   uint64
}

// NewParseCache creates a cache holding at most capacity parse results.
// A capacity of 0 or less means unlimited.
func NewParseCache(capacity int) *ParseCache {
	return &ParseCache{c: cache.New[parseKey, GradientState](capacity)}
}

func (p *ParseCache) get(k parseKey) (GradientState, bool) {
	s, ok := p.c.Get(k)
	if !ok {
		return GradientState{}, false
	}
	return s.Clone(), true
}

func (p *ParseCache) put(k parseKey, s GradientState) {
	p.c.Set(k, s.Clone())
}

func (p *ParseCache) remove(k parseKey) bool {
	return p.c.Delete(k)
}

// Invalidate drops every cached result.
func (p *ParseCache) Invalidate() {
	p.c.Purge()
}

// Len returns the number of cached results.
func (p *ParseCache) Len() int {
	return p.c.Len()
}

// Stats returns a snapshot of the cache counters.
func (p *ParseCache) Stats() CacheStats {
	s := p.c.Stats()
	return CacheStats{Len: s.Len, Capacity: s.Capacity, Hits: s.Hits, Misses: s.Misses}
}
