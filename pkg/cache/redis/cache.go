package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/portls-labs/portls/pkg/cache"
	"github.com/portls-labs/portls/pkg/config"
)

// Cache implements cache.Cache on a Redis server.
type Cache struct {
	client *goredis.Client
}

var _ cache.Cache = (*Cache)(nil)

// NewCache connects to Redis and verifies the connection with a ping.
func NewCache(ctx context.Context, cfg *config.RedisConfig) (*Cache, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return &Cache{client: client}, nil
}

func (c *Cache) Get(ctx context.Context, key string) (any, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, cache.ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to get key from redis: %w", err)
	}
	return val, nil
}

func (c *Cache) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	if expiration == cache.NoExpiration {
		// Redis treats zero as "no TTL".
		expiration = 0
	}
	if err := c.client.Set(ctx, key, value, expiration).Err(); err != nil {
		return fmt.Errorf("failed to set key in redis: %w", err)
	}
	return nil
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete key from redis: %w", err)
	}
	return nil
}
