package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Mumbi286/DukaYetu/internal/domain/products"
	"github.com/Mumbi286/DukaYetu/internal/pkg/config"
	"github.com/Mumbi286/DukaYetu/internal/pkg/logger"
	"github.com/Mumbi286/DukaYetu/internal/pkg/metrics"

	"github.com/redis/go-redis/v9"
)

// Cache keys
const (
	ProductKeyPrefix = "products:id:"
	ProductListKey   = "products:list"

	backendRedis = "redis"
)

// ProductKey returns the cache key of a single product
func ProductKey(productID uint) string {
	return ProductKeyPrefix + strconv.FormatUint(uint64(productID), 10)
}

// RedisProductCache is a products.ProductCache backed by Redis
type RedisProductCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

// NewRedisProductCache creates a cache from the settings' redis:// URL
func NewRedisProductCache(settings config.CacheSettings, logger logger.Logger) (*RedisProductCache, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	options, err := redis.ParseURL(settings.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	return NewRedisProductCacheWithClient(redis.NewClient(options), settings.TTL(), logger), nil
}

// NewRedisProductCacheWithClient wraps an existing client
func NewRedisProductCacheWithClient(client *redis.Client, ttl time.Duration, logger logger.Logger) *RedisProductCache {
	return &RedisProductCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Ping tests the Redis connection
func (c *RedisProductCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (c *RedisProductCache) Close() error {
	return c.client.Close()
}

func (c *RedisProductCache) Get(ctx context.Context, productID uint) (*products.Product, bool, error) {
	var product products.Product
	found, err := c.get(ctx, ProductKey(productID), &product)
	if err != nil || !found {
		return nil, found, err
	}
	return &product, true, nil
}

func (c *RedisProductCache) Set(ctx context.Context, product *products.Product) error {
	return c.set(ctx, ProductKey(product.ID), product)
}

func (c *RedisProductCache) GetList(ctx context.Context) ([]*products.Product, bool, error) {
	var list []*products.Product
	found, err := c.get(ctx, ProductListKey, &list)
	if err != nil || !found {
		return nil, found, err
	}
	return list, true, nil
}

func (c *RedisProductCache) SetList(ctx context.Context, list []*products.Product) error {
	return c.set(ctx, ProductListKey, list)
}

// Invalidate drops the product entry and the cached list
func (c *RedisProductCache) Invalidate(ctx context.Context, productID uint) error {
	if err := c.client.Del(ctx, ProductKey(productID), ProductListKey).Err(); err != nil {
		metrics.CacheErrors.WithLabelValues(backendRedis, "delete").Inc()
		return fmt.Errorf("failed to invalidate product %d: %w", productID, err)
	}
	return nil
}

func (c *RedisProductCache) set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		metrics.CacheErrors.WithLabelValues(backendRedis, "marshal").Inc()
		return fmt.Errorf("failed to marshal cache value for key %s: %w", key, err)
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		metrics.CacheErrors.WithLabelValues(backendRedis, "set").Inc()
		return fmt.Errorf("failed to set cache value for key %s: %w", key, err)
	}
	return nil
}

func (c *RedisProductCache) get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.CacheMisses.WithLabelValues(backendRedis).Inc()
			return false, nil
		}
		metrics.CacheErrors.WithLabelValues(backendRedis, "get").Inc()
		return false, fmt.Errorf("failed to get cache value for key %s: %w", key, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		c.logger.Warn("Dropping undecodable cache value for key ", key)
		metrics.CacheErrors.WithLabelValues(backendRedis, "unmarshal").Inc()
		_ = c.client.Del(ctx, key).Err()
		return false, nil
	}

	metrics.CacheHits.WithLabelValues(backendRedis).Inc()
	return true, nil
}
