// Package config provides application configuration loading and validation.
package config

import "fmt"

// Config is the full gateway configuration assembled from the environment.
type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Upstream UpstreamConfig
	Session  SessionConfig
	CORS     CORSConfig
	// GinMode is the gin framework mode (debug, release, test).
	GinMode string
}

// LoadFromEnv loads the full configuration from environment variables.
func LoadFromEnv() Config {
	return Config{
		Server:   LoadServerConfigFromEnv(),
		Logger:   LoadLoggerConfigFromEnv(),
		Upstream: LoadUpstreamConfigFromEnv(),
		Session:  LoadSessionConfigFromEnv(),
		CORS:     LoadCORSConfigFromEnv(),
		GinMode:  GetEnv("GIN_MODE", "release"),
	}
}

// Validate validates the full configuration.
func (c Config) Validate() error {
	validModes := map[string]bool{
		"debug":   true,
		"release": true,
		"test":    true,
	}
	if !validModes[c.GinMode] {
		return fmt.Errorf("invalid GIN_MODE: %s (must be: debug, release, test)", c.GinMode)
	}

	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return fmt.Errorf("logger config validation failed: %w", err)
	}
	if err := c.Upstream.Validate(); err != nil {
		return fmt.Errorf("upstream config validation failed: %w", err)
	}
	if err := c.Session.Validate(); err != nil {
		return fmt.Errorf("session config validation failed: %w", err)
	}
	return nil
}
