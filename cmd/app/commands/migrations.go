package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// migrationDirs maps DB_DRIVER to its directory under migrations/.
var migrationDirs = map[string]string{
	"postgres": "postgresql",
	"mysql":    "mysql",
}

// RunMigrations applies every pending migration under ./migrations for driver.
// No pending migration is not an error.
func RunMigrations(logger *slog.Logger, driver, connectionString string) error {
	return applyMigrations(logger, "migrations", driver, connectionString)
}

func migrationsSource(root, driver string) (string, error) {
	dir, ok := migrationDirs[driver]
	if !ok {
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
	return "file://" + filepath.ToSlash(filepath.Join(root, dir)), nil
}

func applyMigrations(logger *slog.Logger, root, driver, connectionString string) error {
	source, err := migrationsSource(root, driver)
	if err != nil {
		return err
	}

	logger.Info("running database migrations", slog.String("driver", driver), slog.String("source", source))

	m, err := migrate.New(source, connectionString)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer closeMigrate(m, logger)

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	logger.Info("migrations completed",
		slog.Uint64("version", uint64(version)),
		slog.Bool("dirty", dirty))
	return nil
}
