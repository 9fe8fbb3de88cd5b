// Package migrate provides session store migration management.
package migrate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/gorm"

	appConfig "github.com/teamarena/gateway/internal/config"
	sessionModel "github.com/teamarena/gateway/internal/session/model"
)

// GetMigrationsPath returns the default path to the migrations directory.
func GetMigrationsPath() string {
	return appConfig.GetEnv("MIGRATIONS_PATH", "migrations")
}

// Migrate applies session store migrations. The postgres path runs the SQL
// migrations via golang-migrate; sqlite auto-migrates the schema, matching
// how the store is built in tests.
func Migrate(db *gorm.DB, driver string) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	if driver == "sqlite" {
		if err := db.AutoMigrate(&sessionModel.Session{}); err != nil {
			return fmt.Errorf("failed to auto-migrate sqlite schema: %w", err)
		}
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	migrationsPath, err := filepath.Abs(GetMigrationsPath())
	if err != nil {
		return fmt.Errorf("failed to get absolute path for migrations: %w", err)
	}
	if _, statErr := os.Stat(migrationsPath); os.IsNotExist(statErr) {
		return fmt.Errorf("migrations directory does not exist: %s", migrationsPath)
	}

	pgDriver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		"postgres",
		pgDriver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
