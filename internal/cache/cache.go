// Package cache provides a small in-memory LRU cache with per-entry TTL.
// Summaries are cheap to recompute but the upstream fetch is not, so the
// service layer memoizes whole SpendSummary values here.
package cache

import (
	"container/list"
	"sync"
	"time"
)

// LRU is a generic LRU cache with TTL and size-based eviction.
// The zero value is not usable; construct with New.
type LRU[T any] struct {
	mu      sync.Mutex
	maxSize int
	ttl     time.Duration
	items   map[string]*list.Element
	order   *list.List

	stopJanitor chan struct{}
	stopOnce    sync.Once
}

type entry[T any] struct {
	key       string
	value     T
	expiresAt time.Time
}

// New creates a cache holding at most maxSize entries, each valid for ttl.
// A janitor goroutine sweeps expired entries every sweepInterval; pass 0 to
// disable sweeping (expired entries are then dropped lazily on Get).
func New[T any](maxSize int, ttl, sweepInterval time.Duration) *LRU[T] {
	c := &LRU[T]{
		maxSize:     maxSize,
		ttl:         ttl,
		items:       make(map[string]*list.Element),
		order:       list.New(),
		stopJanitor: make(chan struct{}),
	}
	if sweepInterval > 0 {
		go c.janitor(sweepInterval)
	}
	return c
}

// Get returns the cached value and whether it was present and fresh.
func (c *LRU[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	elem, ok := c.items[key]
	if !ok {
		return zero, false
	}
	e := elem.Value.(*entry[T])
	if time.Now().After(e.expiresAt) {
		c.remove(elem)
		return zero, false
	}
	c.order.MoveToFront(elem)
	return e.value, true
}

// Set stores a value, evicting the least recently used entry when full.
func (c *LRU[T]) Set(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := &entry[T]{key: key, value: value, expiresAt: time.Now().Add(c.ttl)}
	if elem, ok := c.items[key]; ok {
		elem.Value = e
		c.order.MoveToFront(elem)
		return
	}
	c.items[key] = c.order.PushFront(e)
	if c.order.Len() > c.maxSize {
		if oldest := c.order.Back(); oldest != nil {
			c.remove(oldest)
		}
	}
}

// Delete removes a key if present.
func (c *LRU[T]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.items[key]; ok {
		c.remove(elem)
	}
}

// Size returns the current number of entries, expired or not.
func (c *LRU[T]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// SweepExpired removes every expired entry and reports how many went.
func (c *LRU[T]) SweepExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	var stale []*list.Element
	for elem := c.order.Front(); elem != nil; elem = elem.Next() {
		if now.After(elem.Value.(*entry[T]).expiresAt) {
			stale = append(stale, elem)
		}
	}
	for _, elem := range stale {
		c.remove(elem)
	}
	return len(stale)
}

// Stop shuts down the janitor goroutine. Safe to call more than once.
func (c *LRU[T]) Stop() {
	c.stopOnce.Do(func() { close(c.stopJanitor) })
}

func (c *LRU[T]) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			c.SweepExpired()
		case <-c.stopJanitor:
			return
		}
	}
}

// caller must hold c.mu
func (c *LRU[T]) remove(elem *list.Element) {
	e := elem.Value.(*entry[T])
	delete(c.items, e.key)
	c.order.Remove(elem)
}
