package cache

import (
	"context"
	"fmt"

	"github.com/Mumbi286/DukaYetu/internal/domain/products"
	"github.com/Mumbi286/DukaYetu/internal/pkg/config"
	"github.com/Mumbi286/DukaYetu/internal/pkg/logger"
)

// NewProductCache returns NoopProductCache when no Redis URL is configured and
// the Redis cache otherwise. A configured but unreachable Redis is an error.
// On success the returned close function is never nil.
func NewProductCache(ctx context.Context, settings config.CacheSettings, logger logger.Logger) (products.ProductCache, func() error, error) {
	if !settings.Enabled() {
		logger.Info("REDIS_URL not set, product cache disabled")
		return NoopProductCache{}, func() error { return nil }, nil
	}

	redisCache, err := NewRedisProductCache(settings, logger)
	if err != nil {
		return nil, nil, err
	}

	if err := redisCache.Ping(ctx); err != nil {
		_ = redisCache.Close()
		return nil, nil, fmt.Errorf("failed to reach redis: %w", err)
	}

	logger.Info("Product cache enabled with ttl ", settings.TTL())
	return redisCache, redisCache.Close, nil
}
