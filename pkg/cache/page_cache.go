package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// CachedPage is a rendered response stored verbatim, so a replay within the TTL
// is byte-identical to the original.
type CachedPage struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// PageCache stores full responses in Redis keyed by request URI. Entries expire
// after the configured TTL; writers never invalidate, readers may see stale
// pages for up to that long.
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewPageCache(client *redis.Client, ttl time.Duration) *PageCache {
	return &PageCache{client: client, ttl: ttl}
}

func (c *PageCache) Get(ctx context.Context, key string) (*CachedPage, bool) {
	data, err := c.client.Get(ctx, "page:"+key).Bytes()
	if err != nil {
		return nil, false
	}
	var page CachedPage
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, false
	}
	return &page, true
}

func (c *PageCache) Set(ctx context.Context, key string, page *CachedPage) {
	data, err := json.Marshal(page)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, "page:"+key, data, c.ttl).Err()
}
