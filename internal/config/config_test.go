package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:         ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Logger: LoggerConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
		Upstream: UpstreamConfig{
			BaseURL: "http://localhost:8000",
			Timeout: 15 * time.Second,
		},
		Session: SessionConfig{
			Driver:     "sqlite",
			SQLitePath: "gateway.db",
			JWTSecret:  "secret",
			TTL:        72 * time.Hour,
		},
		GinMode: "release",
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		os.Unsetenv("GIN_MODE")
		os.Unsetenv("BACKEND_BASE_URL")
		os.Unsetenv("DB_DRIVER")

		cfg := LoadFromEnv()

		assert.Equal(t, "release", cfg.GinMode)
		assert.Equal(t, "http://localhost:8000", cfg.Upstream.BaseURL)
		assert.Equal(t, "sqlite", cfg.Session.Driver)
	})

	t.Run("overrides from env", func(t *testing.T) {
		os.Setenv("GIN_MODE", "debug")
		os.Setenv("BACKEND_BASE_URL", "https://api.example.com")
		os.Setenv("BACKEND_TIMEOUT", "5s")
		defer func() {
			os.Unsetenv("GIN_MODE")
			os.Unsetenv("BACKEND_BASE_URL")
			os.Unsetenv("BACKEND_TIMEOUT")
		}()

		cfg := LoadFromEnv()

		assert.Equal(t, "debug", cfg.GinMode)
		assert.Equal(t, "https://api.example.com", cfg.Upstream.BaseURL)
		assert.Equal(t, 5*time.Second, cfg.Upstream.Timeout)
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		require.NoError(t, validConfig().Validate())
	})

	t.Run("invalid gin mode", func(t *testing.T) {
		cfg := validConfig()
		cfg.GinMode = "production"

		err := cfg.Validate()

		assert.ErrorContains(t, err, "invalid GIN_MODE")
	})

	t.Run("invalid upstream base URL", func(t *testing.T) {
		cfg := validConfig()
		cfg.Upstream.BaseURL = "not a url"

		err := cfg.Validate()

		assert.ErrorContains(t, err, "upstream config validation failed")
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.Session.JWTSecret = ""

		err := cfg.Validate()

		assert.ErrorContains(t, err, "JWT_SECRET is required")
	})

	t.Run("invalid session driver", func(t *testing.T) {
		cfg := validConfig()
		cfg.Session.Driver = "mysql"

		err := cfg.Validate()

		assert.ErrorContains(t, err, "invalid DB_DRIVER")
	})
}

func TestUpstreamConfig_Validate(t *testing.T) {
	t.Run("zero timeout", func(t *testing.T) {
		cfg := UpstreamConfig{BaseURL: "http://localhost:8000", Timeout: 0}

		assert.ErrorContains(t, cfg.Validate(), "BACKEND_TIMEOUT")
	})

	t.Run("missing base URL", func(t *testing.T) {
		cfg := UpstreamConfig{Timeout: time.Second}

		assert.ErrorContains(t, cfg.Validate(), "BACKEND_BASE_URL is required")
	})
}

func TestSessionConfig_Validate(t *testing.T) {
	t.Run("sqlite requires path", func(t *testing.T) {
		cfg := SessionConfig{Driver: "sqlite", JWTSecret: "s", TTL: time.Hour}

		assert.ErrorContains(t, cfg.Validate(), "SQLITE_PATH")
	})

	t.Run("postgres does not require sqlite path", func(t *testing.T) {
		cfg := SessionConfig{Driver: "postgres", JWTSecret: "s", TTL: time.Hour}

		assert.NoError(t, cfg.Validate())
	})

	t.Run("zero ttl", func(t *testing.T) {
		cfg := SessionConfig{Driver: "sqlite", SQLitePath: "x.db", JWTSecret: "s"}

		assert.ErrorContains(t, cfg.Validate(), "SESSION_TTL")
	})
}
