// Package memory implements the rate cache in process, for single-instance deployments.
package memory

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	portsrepo "github.com/SscSPs/bond_catalog/internal/core/ports/repositories"
)

// DefaultSize bounds the number of currency pairs kept in memory.
const DefaultSize = 1024

type entry struct {
	value     []byte
	expiresAt time.Time
}

// RateCache is an LRU with per-entry expiry.
// The LRU's own TTL is an upper bound; each entry also carries the TTL it was set with.
type RateCache struct {
	lru *expirable.LRU[string, entry]
	now func() time.Time
}

// Option configures a RateCache.
type Option func(*RateCache)

// WithClock replaces time.Now for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(c *RateCache) { c.now = now }
}

// NewRateCache creates a cache holding up to size entries, none living longer than maxTTL.
func NewRateCache(size int, maxTTL time.Duration, opts ...Option) *RateCache {
	if size <= 0 {
		size = DefaultSize
	}
	c := &RateCache{
		lru: expirable.NewLRU[string, entry](size, nil, maxTTL),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ portsrepo.RateCache = (*RateCache)(nil)

func (c *RateCache) Get(_ context.Context, key string) ([]byte, error) {
	e, ok := c.lru.Get(key)
	if !ok {
		return nil, portsrepo.ErrCacheMiss
	}
	if !c.now().Before(e.expiresAt) {
		c.lru.Remove(key)
		return nil, portsrepo.ErrCacheMiss
	}
	return e.value, nil
}

func (c *RateCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	c.lru.Add(key, entry{value: stored, expiresAt: c.now().Add(ttl)})
	return nil
}

// Len reports the number of entries currently held, expired ones included until evicted.
func (c *RateCache) Len() int {
	return c.lru.Len()
}
