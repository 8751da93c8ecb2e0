// Copyright (c) 2026 Brightsite Labs <hello@brightsite.dev>
// All rights reserved. See LICENSE for details.

// page.go provides a Valkey-backed full-page HTML cache. When a public
// page is composed, the resulting HTML is stored so subsequent requests
// skip the content fetch and template execution entirely. Cache keys
// fold in the style namespace version, so a theme or template selection
// change never serves HTML composed under the previous selection.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// pageKeyPrefix namespaces cached pages in Valkey.
	pageKeyPrefix = "page:"

	// DefaultPageTTL is how long a composed page stays cached.
	DefaultPageTTL = 5 * time.Minute
)

// PageCache manages full-page HTML caching in Valkey.
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPageCache creates a new page cache backed by the given Valkey client.
func NewPageCache(client *redis.Client, ttl time.Duration) *PageCache {
	if ttl == 0 {
		ttl = DefaultPageTTL
	}
	return &PageCache{client: client, ttl: ttl}
}

// PageKey builds the cache key for a page id under a given style
// namespace version.
func PageKey(pageID string, styleVersion uint64) string {
	return fmt.Sprintf("%s:v%d", pageID, styleVersion)
}

// Get retrieves cached HTML for a key. Returns false on miss or error;
// cache errors are logged and treated as misses.
func (pc *PageCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := pc.client.Get(ctx, pageKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("page cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("page cache hit", "key", key)
	return val, true
}

// Set stores composed HTML for a key with the configured TTL.
func (pc *PageCache) Set(ctx context.Context, key string, html []byte) {
	if err := pc.client.Set(ctx, pageKeyPrefix+key, html, pc.ttl).Err(); err != nil {
		slog.Warn("page cache set error", "key", key, "error", err)
	}
}

// InvalidatePage removes every cached variant of a single page by
// scanning across style versions. Called after content or section edits.
func (pc *PageCache) InvalidatePage(ctx context.Context, pageID string) {
	pc.deleteByPattern(ctx, pageKeyPrefix+pageID+":*")
	slog.Debug("page cache invalidated", "page", pageID)
}

// InvalidateAll removes all cached pages. Used when navigation or site
// settings change, since any page could be affected.
func (pc *PageCache) InvalidateAll(ctx context.Context) {
	pc.deleteByPattern(ctx, pageKeyPrefix+"*")
}

// deleteByPattern scans for keys matching the pattern and deletes them
// in batches.
func (pc *PageCache) deleteByPattern(ctx context.Context, pattern string) {
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := pc.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			slog.Warn("page cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := pc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("page cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("page cache cleared", "pattern", pattern, "deleted", deleted)
	}
}
