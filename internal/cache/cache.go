package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/redis/go-redis/v9"
)

type Cache struct {
	client *redis.Client
}

// compile-time check: *Cache must satisfy port.Cache
var _ port.Cache = (*Cache)(nil)

func NewCache(addr, password string) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &Cache{client: rdb}
}

// Ping checks the connection at startup.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *Cache) GetPortfolio(ctx context.Context) ([]byte, error) {
	logger.Debug(ctx, "getting portfolio entry in cache...")

	val, err := c.client.Get(ctx, getCacheKey(false)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) GetEtagPortfolio(ctx context.Context) (string, error) {
	val, err := c.client.Get(ctx, getCacheKey(true)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) SetPortfolio(ctx context.Context, data []byte, ttl time.Duration) {
	logger.Infof(ctx, "caching portfolio for %s...", ttl)

	if err := c.client.Set(ctx, getCacheKey(false), data, ttl).Err(); err != nil {
		logger.Warnf(ctx, "⚠️  failed to cache portfolio: %v", err)
	}
}

func (c *Cache) SetEtagPortfolio(ctx context.Context, etag string, ttl time.Duration) {
	if err := c.client.Set(ctx, getCacheKey(true), etag, ttl).Err(); err != nil {
		logger.Warnf(ctx, "⚠️  failed to cache portfolio etag: %v", err)
	}
}

// DeletePortfolio drops the page and its ETag together.
func (c *Cache) DeletePortfolio(ctx context.Context) error {
	logger.Info(ctx, "deleting portfolio entry in cache...")

	if err := c.client.Del(ctx, getCacheKey(false), getCacheKey(true)).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func getCacheKey(etag bool) string {
	if etag {
		return "portfolio:landing:etag"
	}
	return "portfolio:landing"
}
