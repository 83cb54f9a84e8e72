package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCache(t *testing.T) (*PageCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewPageCache(client, 20*time.Second), mr
}

func TestPageCacheRoundTrip(t *testing.T) {
	c, _ := newCache(t)
	ctx := context.Background()

	_, ok := c.Get(ctx, "/?page=1")
	assert.False(t, ok)

	stored := &CachedPage{Status: 200, ContentType: "application/json", Body: []byte(`{"posts":[]}`)}
	c.Set(ctx, "/?page=1", stored)

	got, ok := c.Get(ctx, "/?page=1")
	require.True(t, ok)
	assert.Equal(t, stored.Status, got.Status)
	assert.Equal(t, stored.ContentType, got.ContentType)
	assert.Equal(t, stored.Body, got.Body)

	// 不同页码是不同的键
	_, ok = c.Get(ctx, "/?page=2")
	assert.False(t, ok)
}

func TestPageCacheExpires(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	c.Set(ctx, "/", &CachedPage{Status: 200, Body: []byte("x")})
	_, ok := c.Get(ctx, "/")
	require.True(t, ok)

	mr.FastForward(21 * time.Second)
	_, ok = c.Get(ctx, "/")
	assert.False(t, ok)
}
