// Package cache is the in-process L1 cache for values that are expensive to
// resolve on every request, such as the active pricing configuration.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// Cache stores JSON-encoded values costed by their byte size.
type Cache struct {
	c   *ristretto.Cache[string, []byte]
	ttl time.Duration
}

// New creates a cache holding at most maxCostBytes of values. Entries
// expire after ttl; zero keeps them until evicted.
func New(maxCostBytes int64, ttl time.Duration) (*Cache, error) {
	c, err := ristretto.NewCache(&ristretto.Config[string, []byte]{
		NumCounters: max(maxCostBytes/100*10, 1000),
		MaxCost:     maxCostBytes,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("creating cache: %w", err)
	}
	return &Cache{c: c, ttl: ttl}, nil
}

func (c *Cache) Get(_ context.Context, key string) ([]byte, bool) {
	return c.c.Get(key)
}

// Set admits value asynchronously; a following Get may still miss.
func (c *Cache) Set(_ context.Context, key string, value []byte) bool {
	return c.c.SetWithTTL(key, value, int64(len(value)), c.ttl)
}

func (c *Cache) Delete(_ context.Context, key string) {
	c.c.Del(key)
}

// Wait blocks until buffered writes have been applied.
func (c *Cache) Wait() {
	c.c.Wait()
}

func (c *Cache) Close() {
	c.c.Close()
}

// GetJSON decodes the cached value for key into v. A value that no longer
// decodes is dropped and reported as a miss.
func GetJSON[T any](ctx context.Context, c *Cache, key string) (T, bool) {
	var v T
	if c == nil {
		return v, false
	}
	data, ok := c.Get(ctx, key)
	if !ok {
		return v, false
	}
	if err := json.Unmarshal(data, &v); err != nil {
		c.Delete(ctx, key)
		return v, false
	}
	return v, true
}

// SetJSON encodes v and stores it under key.
func SetJSON[T any](ctx context.Context, c *Cache, key string, v T) error {
	if c == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding cache value %s: %w", key, err)
	}
	c.Set(ctx, key, data)
	return nil
}
