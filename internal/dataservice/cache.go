package dataservice

import "sync"

type cacheKind int

const (
	kindDashboard cacheKind = iota
	kindNetworkStats
	kindTokenStats
	kindFeeData
)

// cacheKey tags a memoized aggregate with its kind and query parameter
// (a date key or a range identifier; empty for the stats-over-everything
// entries). One keyed map replaces the several ad-hoc cache slots so a
// single clear covers them all.
type cacheKey struct {
	kind  cacheKind
	param string
}

// resultCache memoizes aggregation outputs. Entries never expire on their
// own; the cache is only cleared wholesale, after a reload or on request.
type resultCache struct {
	mu      sync.Mutex
	entries map[cacheKey]interface{}
}

func newResultCache() *resultCache {
	return &resultCache{entries: make(map[cacheKey]interface{})}
}

func (c *resultCache) get(key cacheKey) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *resultCache) put(key cacheKey, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

func (c *resultCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[cacheKey]interface{})
}
