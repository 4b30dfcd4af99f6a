// Package cache provides the bounded response cache shared by the
// analyzer and the renderer, plus the canonical key helpers.
package cache

import (
	"sort"
	"strings"
)

// DefaultCapacity is used when the configured capacity is zero or negative.
const DefaultCapacity = 256

// Cache is a bounded insert-order map. When capacity is exceeded the
// oldest entry is evicted (FIFO). It is owned by a single parent object
// and is not safe for concurrent use.
type Cache struct {
	capacity int
	keys     []string
	entries  map[string]any
}

// New creates a cache with the given capacity.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache{
		capacity: capacity,
		keys:     make([]string, 0, capacity),
		entries:  make(map[string]any, capacity),
	}
}

// Get returns the cached value for key, if present.
func (c *Cache) Get(key string) (any, bool) {
	v, ok := c.entries[key]
	return v, ok
}

// Put stores a value, evicting the oldest entry if the cache is full.
// Overwriting an existing key does not change its eviction order.
func (c *Cache) Put(key string, value any) {
	if _, ok := c.entries[key]; ok {
		c.entries[key] = value
		return
	}
	if len(c.keys) >= c.capacity {
		oldest := c.keys[0]
		c.keys = c.keys[1:]
		delete(c.entries, oldest)
	}
	c.keys = append(c.keys, key)
	c.entries[key] = value
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Clear removes all entries.
func (c *Cache) Clear() {
	c.keys = c.keys[:0]
	c.entries = make(map[string]any, c.capacity)
}

// Normalize produces the canonical cache key for raw command text:
// lowercased and trimmed. Every analyzer call site uses this one form.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// CompositeKey builds an order-independent key from a name and a set of
// context variables: the pairs are sorted, so two maps with the same
// contents always produce the same key.
func CompositeKey(name string, vars map[string]string) string {
	if len(vars) == 0 {
		return name
	}
	pairs := make([]string, 0, len(vars))
	for k, v := range vars {
		pairs = append(pairs, k+"="+v)
	}
	sort.Strings(pairs)
	return name + "|" + strings.Join(pairs, "|")
}
