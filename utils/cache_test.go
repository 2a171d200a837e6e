package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExpiringCache(t *testing.T) {
	now := time.Unix(1700000000, 0)
	c := NewExpiringCache[string, int](4, time.Second*10, func() time.Time {
		return now
	})

	c.Set("a", 1)
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	now = now.Add(time.Second * 11)
	_, ok = c.Get("a")
	assert.False(t, ok)

	c.Set("a", 2)
	v, ok = c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	c.Delete("a")
	_, ok = c.Get("a")
	assert.False(t, ok)
}

func TestLRUCacheEviction(t *testing.T) {
	c := NewLRUCache[int, int](2)
	c.Set(1, 1)
	c.Set(2, 2)
	c.Set(3, 3)

	_, ok := c.Get(1)
	assert.False(t, ok)
	_, ok = c.Get(3)
	assert.True(t, ok)

	hits, misses := c.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(1), misses)
}
