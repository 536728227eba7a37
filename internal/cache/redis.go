package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// KeyPrefix namespaces every key written by Redis.
const KeyPrefix = "hoops:"

// Redis stores responses in a shared Redis instance so several API
// replicas serve the same cached source data. Redis failures degrade to
// cache misses.
type Redis struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedis connects to the Redis instance at url (redis://...).
func NewRedis(ctx context.Context, url string, logger *slog.Logger) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Redis{client: client, logger: logger}, nil
}

// Get returns a cached value. The ETag is recomputed from the payload.
func (c *Redis) Get(ctx context.Context, key string) ([]byte, string, bool) {
	data, err := c.client.Get(ctx, KeyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("Redis cache read failed", "key", key, "error", err)
		}
		return nil, "", false
	}
	return data, ComputeETag(data), true
}

// Set stores data under key for ttl and returns its ETag.
func (c *Redis) Set(ctx context.Context, key string, data []byte, ttl time.Duration) string {
	if err := c.client.Set(ctx, KeyPrefix+key, data, ttl).Err(); err != nil {
		c.logger.Warn("Redis cache write failed", "key", key, "error", err)
	}
	return ComputeETag(data)
}

// Stats reports connectivity and the number of keys in the database.
func (c *Redis) Stats(ctx context.Context) map[string]interface{} {
	stats := map[string]interface{}{
		"backend": "redis",
		"enabled": true,
	}
	if err := c.client.Ping(ctx).Err(); err != nil {
		stats["connected"] = false
		stats["error"] = err.Error()
		return stats
	}
	stats["connected"] = true
	if n, err := c.client.DBSize(ctx).Result(); err == nil {
		stats["total_keys"] = n
	}
	return stats
}

// Close releases the connection pool.
func (c *Redis) Close() error {
	return c.client.Close()
}
