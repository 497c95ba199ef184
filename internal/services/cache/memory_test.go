package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func TestMemoryCache_SetGet(t *testing.T) {
	mc := NewMemoryCache(1)
	defer mc.Stop()
	ctx := context.Background()

	_, ok := mc.Get(ctx, "missing")
	assert.False(t, ok)

	assert.NoError(t, mc.Set(ctx, "k", []byte("svg"), time.Minute))
	got, ok := mc.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, []byte("svg"), got)

	stats := mc.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 1, stats.Entries)
	assert.Equal(t, int64(4), stats.Bytes)
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := &clock{t: time.Unix(1000, 0)}
	mc := newMemoryCache(0, c.now)
	ctx := context.Background()

	_ = mc.Set(ctx, "short", []byte("a"), time.Second)
	_ = mc.Set(ctx, "default", []byte("b"), 0)

	c.t = c.t.Add(2 * time.Second)
	_, ok := mc.Get(ctx, "short")
	assert.False(t, ok)
	_, ok = mc.Get(ctx, "default")
	assert.True(t, ok)

	c.t = c.t.Add(DefaultTTL)
	mc.removeExpired()
	assert.Equal(t, 0, mc.Stats().Entries)
	assert.Equal(t, int64(0), mc.Stats().Bytes)
}

func TestMemoryCache_EvictsLeastRecentlyUsed(t *testing.T) {
	mc := newMemoryCache(12, time.Now)
	ctx := context.Background()

	_ = mc.Set(ctx, "a", []byte("11111"), time.Minute) // 6 bytes
	_ = mc.Set(ctx, "b", []byte("22222"), time.Minute) // 6 bytes
	_, _ = mc.Get(ctx, "a")
	_ = mc.Set(ctx, "c", []byte("33333"), time.Minute)

	_, okA := mc.Get(ctx, "a")
	_, okB := mc.Get(ctx, "b")
	_, okC := mc.Get(ctx, "c")
	assert.True(t, okA)
	assert.False(t, okB)
	assert.True(t, okC)
	assert.Equal(t, int64(1), mc.Stats().Evictions)
	assert.Equal(t, int64(12), mc.Stats().Bytes)
}

func TestMemoryCache_OversizedValueSkipped(t *testing.T) {
	mc := newMemoryCache(4, time.Now)
	ctx := context.Background()

	assert.NoError(t, mc.Set(ctx, "big", []byte("too large"), time.Minute))
	_, ok := mc.Get(ctx, "big")
	assert.False(t, ok)
}

func TestMemoryCache_ReplaceDeleteClear(t *testing.T) {
	mc := newMemoryCache(0, time.Now)
	ctx := context.Background()

	_ = mc.Set(ctx, "k", []byte("one"), time.Minute)
	_ = mc.Set(ctx, "k", []byte("three"), time.Minute)
	got, _ := mc.Get(ctx, "k")
	assert.Equal(t, []byte("three"), got)
	assert.Equal(t, int64(6), mc.Stats().Bytes)

	assert.NoError(t, mc.Delete(ctx, "k"))
	assert.Equal(t, 0, mc.Stats().Entries)

	_ = mc.Set(ctx, "x", []byte("1"), time.Minute)
	_ = mc.Set(ctx, "y", []byte("2"), time.Minute)
	assert.NoError(t, mc.Clear(ctx))
	assert.Equal(t, 0, mc.Stats().Entries)
	assert.Equal(t, int64(0), mc.Stats().Bytes)
}
