// Package lru provides a fixed-capacity least-recently-used cache keyed by
// string. It backs the secret cache's eviction store and is not part of the
// public API.
//
// Lookups and insertions are O(1): a map resolves keys to list elements, and
// a doubly-linked list tracks usage order with the most recently used entry
// at the front.
package lru

import "container/list"

// Cache is a bounded string-keyed LRU cache. Reading or writing a key marks
// it most recently used; inserting a new key beyond capacity evicts the
// least recently used key.
//
// Cache is not safe for concurrent use; callers must serialize access.
type Cache[V any] struct {
	capacity int

	// order holds *node values, front = most recently used.
	order *list.List

	// elems maps keys to their list element for O(1) promotion.
	elems map[string]*list.Element
}

type node[V any] struct {
	key   string
	value V
}

// New returns an empty cache bounded to the given capacity.
// A capacity below 1 is raised to 1; a zero-capacity cache is not
// representable.
func New[V any](capacity int) *Cache[V] {
	if capacity < 1 {
		capacity = 1
	}
	return &Cache[V]{
		capacity: capacity,
		order:    list.New(),
		elems:    make(map[string]*list.Element, capacity),
	}
}

// Get returns the value stored under key and promotes the key to most
// recently used. The second return value reports whether the key was
// present.
func (c *Cache[V]) Get(key string) (V, bool) {
	if elem, ok := c.elems[key]; ok {
		c.order.MoveToFront(elem)
		return elem.Value.(*node[V]).value, true
	}
	var zero V
	return zero, false
}

// Put stores value under key and promotes the key to most recently used.
// Overwriting an existing key never evicts. Inserting a new key while the
// cache is full evicts the least recently used key first.
func (c *Cache[V]) Put(key string, value V) {
	if elem, ok := c.elems[key]; ok {
		elem.Value.(*node[V]).value = value
		c.order.MoveToFront(elem)
		return
	}

	if c.order.Len() >= c.capacity {
		c.evictOldest()
	}

	c.elems[key] = c.order.PushFront(&node[V]{key: key, value: value})
}

// Len returns the number of resident keys.
func (c *Cache[V]) Len() int {
	return c.order.Len()
}

// Keys returns the resident keys ordered from most to least recently used.
func (c *Cache[V]) Keys() []string {
	keys := make([]string, 0, c.order.Len())
	for elem := c.order.Front(); elem != nil; elem = elem.Next() {
		keys = append(keys, elem.Value.(*node[V]).key)
	}
	return keys
}

func (c *Cache[V]) evictOldest() {
	oldest := c.order.Back()
	if oldest == nil {
		return
	}
	c.order.Remove(oldest)
	delete(c.elems, oldest.Value.(*node[V]).key)
}
