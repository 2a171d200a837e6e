package utils

import (
	"github.com/floatdrop/lru"
	"sync/atomic"
	"time"
)

type LRUCache[K comparable, T any] struct {
	values       atomic.Pointer[lru.LRU[K, T]]
	hits, misses atomic.Uint64
	size         int
}

func NewLRUCache[K comparable, T any](size int) *LRUCache[K, T] {
	c := &LRUCache[K, T]{
		size: size,
	}
	c.Clear()
	return c
}

func (c *LRUCache[K, T]) Get(key K) (value T, ok bool) {
	if v := c.values.Load().Get(key); v != nil {
		c.hits.Add(1)
		return *v, true
	} else {
		c.misses.Add(1)
		return value, false
	}
}

func (c *LRUCache[K, T]) Set(key K, value T) {
	c.values.Load().Set(key, value)
}

func (c *LRUCache[K, T]) Delete(key K) {
	c.values.Load().Remove(key)
}

func (c *LRUCache[K, T]) Clear() {
	c.values.Store(lru.New[K, T](c.size))
}

func (c *LRUCache[K, T]) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}

type expiringEntry[T any] struct {
	t     time.Time
	value T
}

// ExpiringCache is an LRUCache whose entries stop being returned once they are older than ttl.
// Expired entries stay in the LRU until evicted or overwritten.
type ExpiringCache[K comparable, T any] struct {
	values *LRUCache[K, expiringEntry[T]]
	ttl    time.Duration
	now    func() time.Time
}

func NewExpiringCache[K comparable, T any](size int, ttl time.Duration, now func() time.Time) *ExpiringCache[K, T] {
	if now == nil {
		now = time.Now
	}
	return &ExpiringCache[K, T]{
		values: NewLRUCache[K, expiringEntry[T]](size),
		ttl:    ttl,
		now:    now,
	}
}

func (c *ExpiringCache[K, T]) Get(key K) (value T, ok bool) {
	e, ok := c.values.Get(key)
	if !ok || e.t.Add(c.ttl).Before(c.now()) {
		return value, false
	}
	return e.value, true
}

func (c *ExpiringCache[K, T]) Set(key K, value T) {
	c.values.Set(key, expiringEntry[T]{
		t:     c.now(),
		value: value,
	})
}

func (c *ExpiringCache[K, T]) Delete(key K) {
	c.values.Delete(key)
}

func (c *ExpiringCache[K, T]) Stats() (hits, misses uint64) {
	return c.values.Stats()
}
