package renderer

import (
	"reflect"
	"sync"

	"github.com/seuros/gopher-cypher-dsl/src/cypher"
)

const defaultCacheSize = 128

// cacheKey identifies a rendering: the tree by identity, the configuration by value.
type cacheKey struct {
	root   cypher.Visitable
	config Configuration
}

// renderCache stores rendered statements.
// Thread-safe with RWMutex and FIFO eviction.
type renderCache struct {
	mu      sync.RWMutex
	cache   map[cacheKey]Rendered
	order   []cacheKey // FIFO insertion order
	maxSize int
}

func newRenderCache(maxSize int) *renderCache {
	if maxSize <= 0 {
		return nil
	}
	return &renderCache{
		cache:   make(map[cacheKey]Rendered),
		order:   make([]cacheKey, 0, maxSize),
		maxSize: maxSize,
	}
}

// cacheable reports whether root can be used as a map key.
func cacheable(root cypher.Visitable) bool {
	return reflect.TypeOf(root).Comparable()
}

// fetch returns the cached rendering of key or builds and stores it using
// fn. The second result reports a cache hit.
func (c *renderCache) fetch(key cacheKey, fn func() Rendered) (Rendered, bool) {
	// Fast path: check if key exists with read lock
	c.mu.RLock()
	if v, ok := c.cache[key]; ok {
		c.mu.RUnlock()
		return v, true
	}
	c.mu.RUnlock()

	val := fn()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another goroutine may have rendered the same statement meanwhile
	if v, ok := c.cache[key]; ok {
		return v, true
	}

	// FIFO eviction: remove oldest entry if at capacity
	if len(c.cache) >= c.maxSize && len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.cache, oldest)
	}

	c.cache[key] = val
	c.order = append(c.order, key)
	return val, false
}

func (c *renderCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}
