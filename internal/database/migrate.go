package database

import (
	"database/sql"
	"errors"
	"fmt"

	"shopfront/internal/config"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"
)

// RunMigrations applies all pending migrations from the configured
// directory. A no-change result is not an error.
func RunMigrations(cfg config.DatabaseConfig, logger zerolog.Logger) error {
	db, err := sql.Open("pgx", cfg.ConnectionString())
	if err != nil {
		return fmt.Errorf("failed to open database for migrations: %w", err)
	}
	defer db.Close()

	driver, err := migratepgx.WithInstance(db, &migratepgx.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", cfg.MigrationsDir),
		cfg.Database,
		driver,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	logger.Info().Str("dir", cfg.MigrationsDir).Msg("database migrations applied")

	return nil
}
