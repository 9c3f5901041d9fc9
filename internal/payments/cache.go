package payments

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/tomdyson/stripe-payments-report/internal/logger"
)

// ProductNameCache remembers resolved product names per payment link so
// warm listings skip the per-link retrieve round-trips. Lookups are
// best-effort: a cache failure must never fail the request.
type ProductNameCache interface {
	Get(ctx context.Context, linkID string) (string, bool)
	Set(ctx context.Context, linkID string, name string)
}

type RedisProductNameCache struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisProductNameCache creates a Redis-backed product name cache.
func NewRedisProductNameCache(client *goredis.Client) *RedisProductNameCache {
	return &RedisProductNameCache{
		client: client,
		prefix: "product_name:",
		ttl:    time.Hour,
	}
}

func (r *RedisProductNameCache) key(linkID string) string {
	return r.prefix + linkID
}

func (r *RedisProductNameCache) Get(ctx context.Context, linkID string) (string, bool) {
	val, err := r.client.Get(ctx, r.key(linkID)).Result()
	if err == goredis.Nil {
		return "", false
	}
	if err != nil {
		logger.Warn("product name cache read failed", map[string]any{
			"error": err.Error(),
		})
		return "", false
	}

	return val, true
}

func (r *RedisProductNameCache) Set(ctx context.Context, linkID string, name string) {
	if err := r.client.Set(ctx, r.key(linkID), name, r.ttl).Err(); err != nil {
		logger.Warn("product name cache write failed", map[string]any{
			"error": err.Error(),
		})
	}
}
