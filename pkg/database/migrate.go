package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	migrate "github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/SscSPs/bond_catalog/internal/platform/config"
	"github.com/SscSPs/bond_catalog/migrations"
)

// RunMigrations applies every pending "up" migration for the given driver.
// It opens its own short-lived connection; dsn is a PostgreSQL URL or a modernc SQLite DSN.
func RunMigrations(driverName, dsn string) error {
	sqlDriver, sourceDir, err := migrationTarget(driverName)
	if err != nil {
		return err
	}

	migrationDB, err := sql.Open(sqlDriver, dsn)
	if err != nil {
		return fmt.Errorf("failed to open database connection for migrations: %w", err)
	}
	// The migrate driver owns migrationDB once created and closes it through m.Close.
	if err := migrationDB.Ping(); err != nil {
		migrationDB.Close()
		return fmt.Errorf("failed to ping database for migrations: %w", err)
	}

	var driver migratedb.Driver
	switch driverName {
	case config.DriverPostgres:
		driver, err = postgres.WithInstance(migrationDB, &postgres.Config{})
	case config.DriverSQLite:
		driver, err = sqlite.WithInstance(migrationDB, &sqlite.Config{})
	}
	if err != nil {
		migrationDB.Close()
		return fmt.Errorf("could not create %s driver instance for migrations: %w", driverName, err)
	}

	source, err := iofs.New(migrations.FS, sourceDir)
	if err != nil {
		driver.Close()
		return fmt.Errorf("could not open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, driverName, driver)
	if err != nil {
		driver.Close()
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	upErr := m.Up()
	sourceErr, dbErr := m.Close()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", upErr)
	}
	if sourceErr != nil {
		return fmt.Errorf("migration source error: %w", sourceErr)
	}
	if dbErr != nil {
		return fmt.Errorf("migration database error: %w", dbErr)
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		slog.Info("No new migrations to apply.", slog.String("driver", driverName))
	} else {
		slog.Info("Database migrations applied successfully.", slog.String("driver", driverName))
	}
	return nil
}

func migrationTarget(driverName string) (sqlDriver, sourceDir string, err error) {
	switch driverName {
	case config.DriverPostgres:
		return "pgx", "postgres", nil
	case config.DriverSQLite:
		return "sqlite", "sqlite", nil
	}
	return "", "", fmt.Errorf("unsupported database driver %q", driverName)
}
