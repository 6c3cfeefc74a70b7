// Package redis implements the rate cache on Redis so several instances share FX rates.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	portsrepo "github.com/SscSPs/bond_catalog/internal/core/ports/repositories"
)

// RateCache stores rates as plain string values with a Redis-side expiry.
type RateCache struct {
	rdb *redis.Client
}

// New parses a redis:// URL, pings the server and returns the cache.
func New(ctx context.Context, redisURL string) (*RateCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: parse url: %w", err)
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis: ping: %w", err)
	}
	return &RateCache{rdb: rdb}, nil
}

// NewFromClient wraps an existing client.
func NewFromClient(rdb *redis.Client) *RateCache {
	return &RateCache{rdb: rdb}
}

var _ portsrepo.RateCache = (*RateCache)(nil)

func (c *RateCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, portsrepo.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis: get %s: %w", key, err)
	}
	return val, nil
}

func (c *RateCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := c.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis: set %s: %w", key, err)
	}
	return nil
}

// Ping checks the Redis connection.
func (c *RateCache) Ping(ctx context.Context) error {
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis: ping: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (c *RateCache) Close() error {
	return c.rdb.Close()
}
