package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5"
	tern "github.com/jackc/tern/v2/migrate"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	"github.com/sergioortiz17/devtools-backend/internal/config"
)

//go:embed migrations/*.sql
var migrations embed.FS

// SQLite has no tern driver; its schema is a single idempotent script.
//
//go:embed schema/sqlite.sql
var sqliteSchema string

// Migrate brings the schema up to date: tern migrations for Postgres,
// the embedded schema script for SQLite.
func Migrate(ctx context.Context, logger *zerolog.Logger, cfg *config.Config) error {
	if cfg.Database.IsSQLite() {
		return fmt.Errorf("sqlite schema is applied on an open handle, use MigrateDatabase")
	}

	conn, err := pgx.Connect(ctx, cfg.Database.DSN())
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	m, err := tern.NewMigrator(ctx, conn, "schema_version")
	if err != nil {
		return fmt.Errorf("constructing database migrator: %w", err)
	}

	subtree, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("retrieving database migrations subtree: %w", err)
	}

	if err := m.LoadMigrations(subtree); err != nil {
		return fmt.Errorf("loading database migrations: %w", err)
	}

	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("retrieving current database migration version: %w", err)
	}

	if err := m.Migrate(ctx); err != nil {
		return err
	}

	if from == int32(len(m.Migrations)) {
		logger.Info().Msgf("database schema up to date, version %d", len(m.Migrations))
	} else {
		logger.Info().Msgf("migrated database schema, from %d to %d", from, len(m.Migrations))
	}
	return nil
}

// MigrateDatabase migrates the store behind an open Database. SQLite runs
// the schema script on the existing handle so ":memory:" databases keep it.
func MigrateDatabase(ctx context.Context, logger *zerolog.Logger, cfg *config.Config, db *Database) error {
	if db.Driver() != config.DriverSQLite {
		return Migrate(ctx, logger, cfg)
	}

	err := RunInTx(ctx, db.DB, func(ctx context.Context, tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, sqliteSchema)
		return err
	})
	if err != nil {
		return fmt.Errorf("applying sqlite schema: %w", err)
	}
	logger.Info().Msg("sqlite schema applied")
	return nil
}
