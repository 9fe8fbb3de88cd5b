package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appConfig "github.com/teamarena/gateway/internal/config"
)

func TestNewWithConfig(t *testing.T) {
	t.Run("json production logger", func(t *testing.T) {
		cfg := appConfig.LoggerConfig{Level: "info", Format: "json", Output: "stdout"}

		log, err := NewWithConfig(cfg)

		require.NoError(t, err)
		assert.NotNil(t, log)
	})

	t.Run("console development logger", func(t *testing.T) {
		cfg := appConfig.LoggerConfig{Level: "debug", Format: "console", Output: "stderr"}

		log, err := NewWithConfig(cfg)

		require.NoError(t, err)
		assert.NotNil(t, log)
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		cfg := appConfig.LoggerConfig{Level: "verbose", Format: "json", Output: "stdout"}

		log, err := NewWithConfig(cfg)

		require.NoError(t, err)
		assert.NotNil(t, log)
	})

	t.Run("file output falls back to stdout", func(t *testing.T) {
		cfg := appConfig.LoggerConfig{Level: "info", Format: "json", Output: "/var/log/app.log"}

		log, err := NewWithConfig(cfg)

		require.NoError(t, err)
		assert.NotNil(t, log)
	})
}
