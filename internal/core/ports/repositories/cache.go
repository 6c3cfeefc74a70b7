package repositories

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by RateCache.Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// RateCache is a small key/value cache with per-entry expiry.
type RateCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
