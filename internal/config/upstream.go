package config

import (
	"fmt"
	"net/url"
	"time"
)

// UpstreamConfig holds configuration for the remote backend API client.
type UpstreamConfig struct {
	// BaseURL is the backend base URL (e.g., "https://api.example.com").
	BaseURL string
	// Timeout is the per-request timeout for upstream calls.
	Timeout time.Duration
}

// LoadUpstreamConfigFromEnv loads upstream configuration from environment variables.
func LoadUpstreamConfigFromEnv() UpstreamConfig {
	return UpstreamConfig{
		BaseURL: GetEnv("BACKEND_BASE_URL", "http://localhost:8000"),
		Timeout: GetEnvDuration("BACKEND_TIMEOUT", 15*time.Second),
	}
}

// Validate validates upstream configuration.
func (c UpstreamConfig) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("BACKEND_BASE_URL is required")
	}
	parsed, err := url.Parse(c.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid BACKEND_BASE_URL: %s", c.BaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("BACKEND_TIMEOUT must be greater than 0")
	}
	return nil
}
