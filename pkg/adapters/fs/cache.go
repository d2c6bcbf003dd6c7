package fs

import (
	"sync"
	"time"
)

// cacheEntry is a slot blob together with the file stamp it was read at.
type cacheEntry struct {
	modTime time.Time
	size    int64
	data    []byte
}

// cache keeps recently read slot blobs. An entry is only served while the
// file's modification time and size are unchanged.
type cache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
}

func newCache() *cache {
	return &cache{entries: make(map[string]cacheEntry)}
}

func (c *cache) get(key string, modTime time.Time, size int64) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || !e.modTime.Equal(modTime) || e.size != size {
		return nil, false
	}
	return e.data, true
}

func (c *cache) put(key string, modTime time.Time, size int64, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{modTime: modTime, size: size, data: data}
}

func (c *cache) drop(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Len returns the number of cached slots.
func (c *cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
