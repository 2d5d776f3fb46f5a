package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/Nzyazin/fincalc/internal/core/repository"
)

type memoryCache struct {
	items *ttlcache.Cache[string, []byte]
	once  sync.Once
}

// NewCache returns an in-process cache. Reads never extend an entry's
// lifetime; expired entries are evicted by the ttlcache janitor until Close.
func NewCache() repository.ResultCache {
	c := &memoryCache{
		items: ttlcache.New[string, []byte](
			ttlcache.WithDisableTouchOnHit[string, []byte](),
		),
	}
	go c.items.Start()
	return c
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, error) {
	item := c.items.Get(key)
	if item == nil {
		return nil, repository.ErrCacheMiss
	}

	value := item.Value()
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Set stores a copy of value; a non-positive ttl never expires.
func (c *memoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	if ttl <= 0 {
		ttl = ttlcache.NoTTL
	}
	c.items.Set(key, stored, ttl)
	return nil
}

func (c *memoryCache) Close() error {
	c.once.Do(c.items.Stop)
	return nil
}
