package config

import (
	"fmt"
	"time"
)

// SessionConfig holds session store and token configuration.
type SessionConfig struct {
	// Driver selects the session store backend (sqlite, postgres).
	Driver string
	// SQLitePath is the database file path when Driver is sqlite.
	SQLitePath string
	// JWTSecret signs session tokens.
	JWTSecret string
	// TTL is the session lifetime.
	TTL time.Duration
}

// LoadSessionConfigFromEnv loads session configuration from environment variables.
func LoadSessionConfigFromEnv() SessionConfig {
	return SessionConfig{
		Driver:     GetEnv("DB_DRIVER", "sqlite"),
		SQLitePath: GetEnv("SQLITE_PATH", "gateway.db"),
		JWTSecret:  GetEnv("JWT_SECRET", ""),
		TTL:        GetEnvDuration("SESSION_TTL", 72*time.Hour),
	}
}

// Validate validates session configuration.
func (c SessionConfig) Validate() error {
	validDrivers := map[string]bool{
		"sqlite":   true,
		"postgres": true,
	}
	if !validDrivers[c.Driver] {
		return fmt.Errorf("invalid DB_DRIVER: %s (must be: sqlite, postgres)", c.Driver)
	}
	if c.Driver == "sqlite" && c.SQLitePath == "" {
		return fmt.Errorf("SQLITE_PATH is required when DB_DRIVER is sqlite")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be greater than 0")
	}
	return nil
}
