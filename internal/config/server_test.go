package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadServerConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := LoadServerConfigFromEnv()

		assert.Equal(t, ":8080", cfg.Port)
		assert.Equal(t, 10*time.Second, cfg.ReadTimeout)
		assert.Equal(t, 10*time.Second, cfg.WriteTimeout)
		assert.Equal(t, 120*time.Second, cfg.IdleTimeout)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("SERVER_PORT", ":9090")
		t.Setenv("SERVER_READ_TIMEOUT", "30s")

		cfg := LoadServerConfigFromEnv()

		assert.Equal(t, ":9090", cfg.Port)
		assert.Equal(t, 30*time.Second, cfg.ReadTimeout)
	})
}

func TestServerConfig_GetAddress(t *testing.T) {
	t.Run("port only", func(t *testing.T) {
		cfg := ServerConfig{Port: ":8080"}
		assert.Equal(t, ":8080", cfg.GetAddress())
	})

	t.Run("host and port", func(t *testing.T) {
		cfg := ServerConfig{Host: "127.0.0.1", Port: ":8080"}
		assert.Equal(t, "127.0.0.1:8080", cfg.GetAddress())
	})

	t.Run("port without colon", func(t *testing.T) {
		cfg := ServerConfig{Host: "localhost", Port: "8080"}
		assert.Equal(t, "localhost:8080", cfg.GetAddress())
	})
}

func TestServerConfig_Validate(t *testing.T) {
	valid := ServerConfig{
		Port:         ":8080",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("zero read timeout", func(t *testing.T) {
		cfg := valid
		cfg.ReadTimeout = 0
		assert.ErrorContains(t, cfg.Validate(), "ReadTimeout")
	})

	t.Run("negative write timeout", func(t *testing.T) {
		cfg := valid
		cfg.WriteTimeout = -time.Second
		assert.ErrorContains(t, cfg.Validate(), "WriteTimeout")
	})

	t.Run("zero idle timeout", func(t *testing.T) {
		cfg := valid
		cfg.IdleTimeout = 0
		assert.ErrorContains(t, cfg.Validate(), "IdleTimeout")
	})
}
