package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"product-catalog/internal/cache"
)

func TestSetAndGet(t *testing.T) {
	c := cache.New(time.Minute)

	c.Set("k", "v")
	got, found := c.Get("k")
	assert.True(t, found)
	assert.Equal(t, "v", got)

	_, found = c.Get("missing")
	assert.False(t, found)
}

func TestExpiredEntriesAreMisses(t *testing.T) {
	c := cache.New(time.Minute)

	c.Set("k", "v", time.Millisecond)
	time.Sleep(5 * time.Millisecond)

	_, found := c.Get("k")
	assert.False(t, found)
}

func TestDeleteByPrefix(t *testing.T) {
	c := cache.New(time.Minute)
	c.Set("product:p1", 1)
	c.Set("product:p2", 2)
	c.Set("products:list", 3)

	c.DeleteByPrefix("product:")

	_, found := c.Get("product:p1")
	assert.False(t, found)
	_, found = c.Get("product:p2")
	assert.False(t, found)
	_, found = c.Get("products:list")
	assert.True(t, found)
}

func TestClearAndSize(t *testing.T) {
	c := cache.New(time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)
	assert.Equal(t, 2, c.Size())

	c.Delete("a")
	assert.Equal(t, 1, c.Size())

	c.Clear()
	assert.Equal(t, 0, c.Size())
}
