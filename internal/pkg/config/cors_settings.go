package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Environment names
const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)

// DefaultFrontendURL is the local development frontend
const DefaultFrontendURL = "http://localhost:3000"

// DefaultAllowedOrigins returns the local development origins that are always allowed
func DefaultAllowedOrigins() []string {
	return []string{
		"http://localhost:3000",
		"http://localhost:3001",
	}
}

// CorsSettings holds the inputs for the cross-origin allow-list
type CorsSettings struct {
	FrontendURL string `mapstructure:"frontend_url"`
}

// Validate rejects a frontend URL that is not an absolute http(s) origin
func (s *CorsSettings) Validate() error {
	frontendURL := strings.TrimSpace(s.FrontendURL)
	if frontendURL == "" {
		return nil
	}

	u, err := url.Parse(frontendURL)
	if err != nil {
		return fmt.Errorf("invalid frontend url %q: %w", frontendURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid frontend url %q: scheme must be http or https", frontendURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid frontend url %q: missing host", frontendURL)
	}

	return nil
}

// AllowedOrigins computes the allow-list from the defaults and the frontend URL
func (s *CorsSettings) AllowedOrigins() []string {
	return BuildAllowedOrigins(DefaultAllowedOrigins(), s.FrontendURL)
}

// BuildAllowedOrigins appends frontendURL, stripped of trailing slashes, to defaults.
// Blank entries are dropped and duplicates removed, keeping first occurrence order.
func BuildAllowedOrigins(defaults []string, frontendURL string) []string {
	candidates := make([]string, 0, len(defaults)+1)
	candidates = append(candidates, defaults...)

	if cleaned := strings.TrimRight(frontendURL, "/"); cleaned != "" {
		candidates = append(candidates, cleaned)
	}

	seen := make(map[string]struct{}, len(candidates))
	origins := make([]string, 0, len(candidates))
	for _, origin := range candidates {
		if strings.TrimSpace(origin) == "" {
			continue
		}
		if _, ok := seen[origin]; ok {
			continue
		}
		seen[origin] = struct{}{}
		origins = append(origins, origin)
	}

	return origins
}
