package cmd

import (
	"sync"
	"time"

	"github.com/uidump/uidump/internal/loader"
)

// mcpCacheEntry holds a parsed control tree with its load timestamp.
type mcpCacheEntry struct {
	root      any
	timestamp time.Time
}

// mcpTreeCache provides a TTL-based cache for parsed control tree files,
// keyed by path. Tree files queried repeatedly by an agent are only parsed
// once per TTL window.
type mcpTreeCache struct {
	mu      sync.Mutex
	entries map[string]mcpCacheEntry
	ttl     time.Duration
}

// newMCPTreeCache creates a new cache. A ttl of 0 disables caching.
func newMCPTreeCache(ttl time.Duration) *mcpTreeCache {
	return &mcpTreeCache{
		entries: make(map[string]mcpCacheEntry),
		ttl:     ttl,
	}
}

// load returns the cached tree for path if within TTL, otherwise parses
// the file fresh.
func (c *mcpTreeCache) load(path string) (any, error) {
	if c.ttl == 0 {
		return loader.Load(path)
	}

	c.mu.Lock()
	if entry, ok := c.entries[path]; ok && time.Since(entry.timestamp) < c.ttl {
		root := entry.root
		c.mu.Unlock()
		return root, nil
	}
	c.mu.Unlock()

	root, err := loader.Load(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[path] = mcpCacheEntry{root: root, timestamp: time.Now()}
	c.mu.Unlock()

	return root, nil
}

// invalidateAll clears the entire cache.
func (c *mcpTreeCache) invalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]mcpCacheEntry)
}
