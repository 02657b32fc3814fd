package client

import (
	"net/url"
	"sync"
)

// Cache is the process-wide query cache. Entries are keyed by a canonical
// string derived from the resource, the view kind and the filter snapshot,
// so structurally equal filters always hit the same entry. Writes are
// last-write-wins behind one mutex.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	value any
	stale bool
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string]*cacheEntry)}
}

// ListKey builds the canonical key for a filtered list view. url.Values
// encodes its fields in sorted order, so deep-equal snapshots produce
// identical keys regardless of construction order.
func ListKey(resource string, params url.Values) string {
	return resource + "|list|" + params.Encode()
}

// DetailKey builds the canonical key for a single entity.
func DetailKey(resource, id string) string {
	return resource + "|detail|" + id
}

// Get returns the entry for key. ok is false when the entry is absent or
// has been marked stale, so a stale entry forces a refetch on next read.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || e.stale {
		return nil, false
	}
	return e.value, true
}

// Put stores value under key, replacing any prior entry.
func (c *Cache) Put(key string, value any) {
	c.mu.Lock()
	c.entries[key] = &cacheEntry{value: value}
	c.mu.Unlock()
}

// InvalidateLists marks every list entry of the resource stale. List
// entries are invalidated coarsely rather than patched in place: the
// client does not want to re-derive the server's filter, sort and
// pagination logic.
func (c *Cache) InvalidateLists(resource string) {
	prefix := resource + "|list|"
	c.mu.Lock()
	for key, e := range c.entries {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			e.stale = true
		}
	}
	c.mu.Unlock()
}

// ApplyPatch shallow-merges patch into the detail entry for id, when one
// is cached, and marks the resource's list entries stale. A missing detail
// entry is fine: the next detail read fetches fresh data anyway.
func (c *Cache) ApplyPatch(resource, id string, patch map[string]any) {
	key := DetailKey(resource, id)

	c.mu.Lock()
	if e, ok := c.entries[key]; ok && !e.stale {
		if detail, ok := e.value.(map[string]any); ok {
			for field, value := range patch {
				detail[field] = value
			}
		}
	}
	c.mu.Unlock()

	c.InvalidateLists(resource)
}

// Clear drops every entry. Used on sign-out and tenant switch.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]*cacheEntry)
	c.mu.Unlock()
}
