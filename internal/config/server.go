package config

import (
	"fmt"
	"net"
	"strings"
	"time"
)

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	// Host is the bind host; empty means all interfaces.
	Host string
	// Port is the bind port, with or without a leading colon.
	Port string
	// ReadTimeout bounds reading the entire request.
	ReadTimeout time.Duration
	// WriteTimeout bounds writing the response.
	WriteTimeout time.Duration
	// IdleTimeout bounds keep-alive waits between requests.
	IdleTimeout time.Duration
}

// LoadServerConfigFromEnv loads server configuration from environment variables.
func LoadServerConfigFromEnv() ServerConfig {
	return ServerConfig{
		Host:         GetEnv("SERVER_HOST", ""),
		Port:         GetEnv("SERVER_PORT", ":8080"),
		ReadTimeout:  GetEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
		WriteTimeout: GetEnvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
		IdleTimeout:  GetEnvDuration("SERVER_IDLE_TIMEOUT", 120*time.Second),
	}
}

// GetAddress returns the listen address in host:port form.
func (c ServerConfig) GetAddress() string {
	if c.Host == "" {
		return c.Port
	}
	return net.JoinHostPort(c.Host, strings.TrimPrefix(c.Port, ":"))
}

// Validate validates server configuration.
func (c ServerConfig) Validate() error {
	timeouts := map[string]time.Duration{
		"ReadTimeout":  c.ReadTimeout,
		"WriteTimeout": c.WriteTimeout,
		"IdleTimeout":  c.IdleTimeout,
	}
	for _, name := range []string{"ReadTimeout", "WriteTimeout", "IdleTimeout"} {
		if timeouts[name] <= 0 {
			return fmt.Errorf("%s must be greater than 0", name)
		}
	}
	return nil
}
