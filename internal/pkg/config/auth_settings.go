package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// DevelopmentSecretKey signs tokens when no SECRET_KEY is configured outside production
const DevelopmentSecretKey = "dukayetu-development-secret-key"

// AuthSettings holds the access token configuration
type AuthSettings struct {
	SecretKey                string `mapstructure:"secret_key" validate:"required,min=16"`
	AccessTokenExpireMinutes int    `mapstructure:"access_token_expire_minutes" validate:"required,min=1,max=10080"`
	RateLimitPerMinute       int    `mapstructure:"rate_limit_per_minute" validate:"min=0"`
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}

	return nil
}

// AccessTokenTTL returns the token lifetime
func (s *AuthSettings) AccessTokenTTL() time.Duration {
	return time.Duration(s.AccessTokenExpireMinutes) * time.Minute
}
