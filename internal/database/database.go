// Package database provides connection management for the session store.
package database

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	appConfig "github.com/teamarena/gateway/internal/config"
)

// Config holds database connection configuration.
type Config struct {
	Driver     string
	SQLitePath string
	Host       string
	User       string
	Password   string
	DBName     string
	Port       string
	SSLMode    string
	TimeZone   string
}

// LoadConfigFromEnv loads database configuration from environment variables.
func LoadConfigFromEnv() Config {
	return Config{
		Driver:     appConfig.GetEnv("DB_DRIVER", "sqlite"),
		SQLitePath: appConfig.GetEnv("SQLITE_PATH", "gateway.db"),
		Host:       appConfig.GetEnv("DB_HOST", "localhost"),
		User:       appConfig.GetEnv("DB_USER", "postgres"),
		Password:   appConfig.GetEnv("DB_PASSWORD", "postgres"),
		DBName:     appConfig.GetEnv("DB_NAME", "gateway"),
		Port:       appConfig.GetEnv("DB_PORT", "5432"),
		SSLMode:    appConfig.GetEnv("DB_SSLMODE", "disable"),
		TimeZone:   appConfig.GetEnv("DB_TIMEZONE", "UTC"),
	}
}

// buildDSN constructs a PostgreSQL DSN string from configuration.
func buildDSN(cfg Config) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.DBName, cfg.Port, cfg.SSLMode, cfg.TimeZone)
}

// New creates a new database connection using environment variables.
func New() (*gorm.DB, error) {
	return NewWithConfig(LoadConfigFromEnv())
}

// NewWithConfig creates a new database connection with custom configuration.
func NewWithConfig(cfg Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.SQLitePath)
	case "postgres":
		dialector = postgres.Open(buildDSN(cfg))
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER: %s", cfg.Driver)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// HealthCheck verifies database connection availability.
func HealthCheck(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}
