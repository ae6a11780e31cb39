// Package cache provides a small read-through cache with tag-based
// invalidation. Mutating services signal "this derived data changed" by tag
// after each write; readers treat the cache as a freshness convenience, never
// as a source of truth.
package cache

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Invalidator is the write-side collaborator handed to mutating services.
type Invalidator interface {
	Invalidate(tags ...string)
}

// Well-known tags. Per-user scoping is achieved by composing a tag with the
// user ID via UserTag.
const (
	TagSettings     = "settings"
	TagAccounts     = "accounts"
	TagTransactions = "transactions"
	TagBudgets      = "budgets"
	TagGoals        = "goals"
	TagSummary      = "summary"
)

// UserTag scopes a tag to a single user.
func UserTag(tag, userID string) string {
	return tag + ":" + userID
}

// TagCache is an LRU cache whose entries are grouped under invalidation tags.
type TagCache[V any] struct {
	mu      sync.Mutex
	entries *lru.Cache[string, V]
	byTag   map[string]map[string]struct{} // tag -> keys
	tagsFor map[string][]string            // key -> tags
}

// New creates a TagCache holding at most size entries.
func New[V any](size int) (*TagCache[V], error) {
	entries, err := lru.New[string, V](size)
	if err != nil {
		return nil, err
	}
	return &TagCache[V]{
		entries: entries,
		byTag:   make(map[string]map[string]struct{}),
		tagsFor: make(map[string][]string),
	}, nil
}

// Get returns the cached value for key, if present.
func (c *TagCache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Get(key)
}

// Set stores value under key and registers it with the given tags.
func (c *TagCache[V]) Set(key string, value V, tags ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.forget(key)
	c.entries.Add(key, value)
	c.tagsFor[key] = tags
	for _, tag := range tags {
		keys, ok := c.byTag[tag]
		if !ok {
			keys = make(map[string]struct{})
			c.byTag[tag] = keys
		}
		keys[key] = struct{}{}
	}
}

// Invalidate evicts every entry registered under any of the given tags.
func (c *TagCache[V]) Invalidate(tags ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, tag := range tags {
		for key := range c.byTag[tag] {
			c.forget(key)
			c.entries.Remove(key)
		}
		delete(c.byTag, tag)
	}
}

// forget drops key from the tag index. Caller holds the lock.
func (c *TagCache[V]) forget(key string) {
	for _, tag := range c.tagsFor[key] {
		delete(c.byTag[tag], key)
	}
	delete(c.tagsFor, key)
}
