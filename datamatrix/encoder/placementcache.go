package encoder

import (
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Logf is a printf-style logging function. Implementations must be safe for
// concurrent use.
type Logf func(format string, args ...any)

// Discard is a Logf that throws away the logs given to it.
func Discard(string, ...any) {}

type placementKey struct {
	rows, cols int
}

func (k placementKey) String() string {
	return strconv.Itoa(k.rows) + "x" + strconv.Itoa(k.cols)
}

// PlacementCache memoizes placement maps by mapping matrix size. There are
// only a few dozen standard sizes, so entries are never evicted.
//
// Concurrent misses for the same size share one build. The zero value is not
// usable; use NewPlacementCache.
type PlacementCache struct {
	logf Logf
	sf   singleflight.Group

	mu   sync.RWMutex
	maps map[placementKey]*PlacementMap
}

// CacheOption configures a PlacementCache.
type CacheOption func(*PlacementCache)

// WithLogf makes the cache log every placement map it builds.
func WithLogf(logf Logf) CacheOption {
	return func(c *PlacementCache) {
		if logf != nil {
			c.logf = logf
		}
	}
}

// NewPlacementCache returns an empty cache.
func NewPlacementCache(opts ...CacheOption) *PlacementCache {
	c := &PlacementCache{
		logf: Discard,
		maps: make(map[placementKey]*PlacementMap),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// DefaultPlacementCache is the process-wide cache used when no other cache
// is supplied.
var DefaultPlacementCache = NewPlacementCache()

// Get returns the placement map for a rows x cols mapping matrix, building
// it on first use. Build errors are returned and not cached.
func (c *PlacementCache) Get(rows, cols int) (*PlacementMap, error) {
	k := placementKey{rows, cols}
	c.mu.RLock()
	m, ok := c.maps[k]
	c.mu.RUnlock()
	if ok {
		placementCacheHits.Inc()
		return m, nil
	}
	placementCacheMisses.Inc()

	v, err, _ := c.sf.Do(k.String(), func() (any, error) {
		m, err := BuildPlacement(rows, cols)
		if err != nil {
			return nil, err
		}
		placementBuilds.Inc()
		c.logf("datamatrix/encoder: built %v placement map for %d codewords", k, m.Codewords())
		return c.store(k, m), nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*PlacementMap), nil
}

// store inserts m unless another map for k is already present, and returns
// the map that ends up cached.
func (c *PlacementCache) store(k placementKey, m *PlacementMap) *PlacementMap {
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.maps[k]; ok {
		return existing
	}
	c.maps[k] = m
	return m
}

// Len returns the number of cached maps.
func (c *PlacementCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.maps)
}

// Reset drops every cached map.
func (c *PlacementCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.maps)
}
