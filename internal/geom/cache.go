package geom

import "sync"

// circleKey identifies one generated circle outline. Two requests with equal
// radius and side count are geometrically identical and share one slice.
type circleKey struct {
	radius float64
	sides  int
}

// circleCache memoizes circle point slices for the process lifetime. Entries
// are never evicted; generated outlines are immutable and stay valid.
type circleCache struct {
	mu      sync.Mutex
	entries map[circleKey][]Vec
}

func newCircleCache() *circleCache {
	return &circleCache{entries: make(map[circleKey][]Vec)}
}

// getOrCreate returns the cached slice for key, invoking create under the
// lock on first request so each key is computed at most once.
func (c *circleCache) getOrCreate(key circleKey, create func() []Vec) []Vec {
	c.mu.Lock()
	defer c.mu.Unlock()
	if pts, ok := c.entries[key]; ok {
		return pts
	}
	pts := create()
	c.entries[key] = pts
	return pts
}
