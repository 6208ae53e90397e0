package window

import "sync"

type cacheKey struct {
	t    Type
	size int
}

// Cache memoizes window coefficient tables by (type, size). Cached slices
// are shared; callers must treat them as read-only. Safe for concurrent
// use.
type Cache struct {
	mu      sync.RWMutex
	windows map[cacheKey][]float64
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{windows: make(map[cacheKey][]float64)}
}

// Get returns the cached coefficients for (t, size), generating and
// retaining them on first use.
func (c *Cache) Get(t Type, size int) ([]float64, error) {
	key := cacheKey{t: t, size: size}

	c.mu.RLock()
	w, ok := c.windows[key]
	c.mu.RUnlock()

	if ok {
		return w, nil
	}

	w, err := Generate(t, size)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if prev, ok := c.windows[key]; ok {
		w = prev
	} else {
		c.windows[key] = w
	}
	c.mu.Unlock()

	return w, nil
}
