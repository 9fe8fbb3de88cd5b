package config

import "strings"

// CORSConfig holds cross-origin configuration for the browser dashboard.
type CORSConfig struct {
	// AllowOrigins is the list of allowed origins. "*" allows any origin.
	AllowOrigins []string
}

// LoadCORSConfigFromEnv loads CORS configuration from environment variables.
func LoadCORSConfigFromEnv() CORSConfig {
	raw := GetEnv("CORS_ALLOW_ORIGINS", "*")
	origins := strings.Split(raw, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	return CORSConfig{AllowOrigins: origins}
}
