package cache

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Remember implement cache-aside: hit → trả cached, miss → load rồi Set.
// Lỗi cache chỉ log, không làm fail request. load trả nil thì không cache.
func Remember[T any](ctx context.Context, c Cache, key string, ttl time.Duration, load func(ctx context.Context) (*T, error)) (*T, error) {
	if c == nil {
		return load(ctx)
	}

	var cached T
	found, err := c.Get(ctx, key, &cached)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("[CACHE] Get failed, falling back to database")
	}
	if err == nil && found {
		return &cached, nil
	}

	value, err := load(ctx)
	if err != nil || value == nil {
		return value, err
	}

	if err := c.Set(ctx, key, value, ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("[CACHE] Set failed")
	}
	return value, nil
}

// Forget xóa key, lỗi chỉ log
func Forget(ctx context.Context, c Cache, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}
	if err := c.Delete(ctx, keys...); err != nil {
		log.Warn().Err(err).Strs("keys", keys).Msg("[CACHE] Delete failed")
	}
}
