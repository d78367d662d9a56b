package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// CacheSettings configures the optional Redis product cache
type CacheSettings struct {
	RedisURL   string `mapstructure:"redis_url" validate:"omitempty,url"`
	TTLSeconds int    `mapstructure:"ttl_seconds" validate:"min=1"`
}

// Validate checks that all fields in CacheSettings are valid
func (s *CacheSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for CacheSettings: %w", err)
	}

	return nil
}

// Enabled reports whether a Redis URL was configured
func (s *CacheSettings) Enabled() bool {
	return s.RedisURL != ""
}

// TTL returns the cache entry lifetime
func (s *CacheSettings) TTL() time.Duration {
	return time.Duration(s.TTLSeconds) * time.Second
}
