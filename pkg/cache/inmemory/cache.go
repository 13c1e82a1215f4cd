package inmemory

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/portls-labs/portls/pkg/cache"
)

// Config holds the in-memory cache settings, both in seconds.
type Config struct {
	DefaultExpiration int
	CleanupInterval   int
}

// Cache implements cache.Cache on top of patrickmn/go-cache. Safe for
// concurrent use.
type Cache struct {
	store *gocache.Cache
}

var _ cache.Cache = (*Cache)(nil)

func NewCache(cfg *Config) (*Cache, error) {
	return &Cache{
		store: gocache.New(
			time.Duration(cfg.DefaultExpiration)*time.Second,
			time.Duration(cfg.CleanupInterval)*time.Second,
		),
	}, nil
}

func (c *Cache) Get(_ context.Context, key string) (any, error) {
	val, found := c.store.Get(key)
	if !found {
		return nil, cache.ErrKeyNotFound
	}
	return val, nil
}

func (c *Cache) Set(_ context.Context, key string, value any, expiration time.Duration) error {
	if expiration == cache.NoExpiration {
		expiration = gocache.NoExpiration
	}
	c.store.Set(key, value, expiration)
	return nil
}

func (c *Cache) Delete(_ context.Context, key string) error {
	c.store.Delete(key)
	return nil
}
