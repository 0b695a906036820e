package cache

import (
	"sync"
	"time"
)

type node[K comparable, V any] struct {
	key        K
	value      V
	expires    time.Time
	prev, next *node[K, V]
}

// LRU is a fixed-size cache safe for concurrent use. Adding a key beyond
// capacity evicts the least recently used one.
type LRU[K comparable, V any] struct {
	mu    sync.Mutex
	size  int
	ttl   time.Duration
	now   func() time.Time
	nodes map[K]*node[K, V]
	root  node[K, V] // root.next is the most recent entry, root.prev the oldest
}

// New returns an LRU holding at most size entries. It panics if size is not
// positive.
func New[K comparable, V any](size int, opts ...Option) *LRU[K, V] {
	if size <= 0 {
		panic("cache: size must be positive")
	}
	s := settings{now: time.Now}
	for _, opt := range opts {
		opt(&s)
	}
	c := &LRU[K, V]{size: size, ttl: s.ttl, now: s.now, nodes: make(map[K]*node[K, V], size)}
	c.root.prev, c.root.next = &c.root, &c.root
	return c
}

// Get returns the value stored under key and marks it recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := c.live(key)
	if n == nil {
		var zero V
		return zero, false
	}
	c.unlink(n)
	c.pushFront(n)
	return n.value, true
}

// Put stores value under key and restarts its TTL.
func (c *LRU[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var expires time.Time
	if c.ttl > 0 {
		expires = c.now().Add(c.ttl)
	}

	if n, ok := c.nodes[key]; ok {
		n.value, n.expires = value, expires
		c.unlink(n)
		c.pushFront(n)
		return
	}

	n := &node[K, V]{key: key, value: value, expires: expires}
	c.nodes[key] = n
	c.pushFront(n)
	if len(c.nodes) > c.size {
		c.drop(c.root.prev)
	}
}

// Remove deletes key and reports whether a live entry was removed.
func (c *LRU[K, V]) Remove(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.nodes[key]
	if !ok {
		return false
	}
	c.drop(n)
	return !c.stale(n)
}

// Len counts stored entries. Expired entries count until they are touched.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.nodes)
}

// live returns the unexpired node for key, dropping it if it has expired.
func (c *LRU[K, V]) live(key K) *node[K, V] {
	n, ok := c.nodes[key]
	if !ok {
		return nil
	}
	if c.stale(n) {
		c.drop(n)
		return nil
	}
	return n
}

func (c *LRU[K, V]) stale(n *node[K, V]) bool {
	return !n.expires.IsZero() && !c.now().Before(n.expires)
}

func (c *LRU[K, V]) drop(n *node[K, V]) {
	c.unlink(n)
	delete(c.nodes, n.key)
}

func (c *LRU[K, V]) unlink(n *node[K, V]) {
	n.prev.next, n.next.prev = n.next, n.prev
	n.prev, n.next = nil, nil
}

func (c *LRU[K, V]) pushFront(n *node[K, V]) {
	n.prev, n.next = &c.root, c.root.next
	c.root.next.prev = n
	c.root.next = n
}
