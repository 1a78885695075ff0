// Package database opens the dictionary store.
//
// It handles:
//   - waiting for the database to come up (retry-go)
//   - PostgreSQL through a pgx pool exposed as database/sql for sqlx
//   - SQLite through mattn/go-sqlite3
//   - wiring query tracing (nrpgx5, pgx tracelog) for Postgres
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avast/retry-go"
	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/jmoiron/sqlx"
	"github.com/newrelic/go-agent/v3/integrations/nrpgx5"
	"github.com/rs/zerolog"
	"github.com/sergioortiz17/devtools-backend/internal/config"
	loggerConfig "github.com/sergioortiz17/devtools-backend/internal/logger"
)

// Database wraps the sqlx handle shared by the repositories.
//
// Pool is only set for Postgres.
type Database struct {
	DB     *sqlx.DB
	Pool   *pgxpool.Pool
	driver string
	log    *zerolog.Logger
}

// DatabasePingTimeout bounds each connection attempt.
const DatabasePingTimeout = 10 * time.Second

// New opens the configured store, retrying until it answers a ping or
// Database.MaxRetries attempts have failed.
func New(ctx context.Context, cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) (*Database, error) {
	var database *Database

	err := retry.Do(
		func() error {
			db, err := open(ctx, cfg, logger, loggerService)
			if err != nil {
				return err
			}
			database = db
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(uint(cfg.Database.MaxRetries)),
		retry.Delay(cfg.Database.RetryDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn().
				Err(err).
				Uint("attempt", n+1).
				Int("max_retries", cfg.Database.MaxRetries).
				Dur("retry_in", cfg.Database.RetryDelay).
				Msg("database not ready")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("could not connect to database after %d attempts: %w", cfg.Database.MaxRetries, err)
	}

	logger.Info().Str("driver", database.driver).Msg("connected to the database")
	return database, nil
}

func open(ctx context.Context, cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) (*Database, error) {
	if cfg.Database.IsSQLite() {
		return openSQLite(ctx, cfg, logger)
	}
	return openPostgres(ctx, cfg, logger, loggerService)
}

func openPostgres(ctx context.Context, cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) (*Database, error) {
	pgxPoolConfig, err := pgxpool.ParseConfig(cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgx pool config: %w", err)
	}

	if cfg.Database.MaxOpenConns > 0 {
		pgxPoolConfig.MaxConns = int32(cfg.Database.MaxOpenConns)
	}
	if cfg.Database.ConnMaxLifetime > 0 {
		pgxPoolConfig.MaxConnLifetime = time.Duration(cfg.Database.ConnMaxLifetime) * time.Second
	}
	if cfg.Database.ConnMaxIdleTime > 0 {
		pgxPoolConfig.MaxConnIdleTime = time.Duration(cfg.Database.ConnMaxIdleTime) * time.Second
	}

	if tracer := newQueryTracer(cfg, logger, loggerService); tracer != nil {
		pgxPoolConfig.ConnConfig.Tracer = tracer
	}

	pool, err := pgxpool.NewWithConfig(ctx, pgxPoolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, DatabasePingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := sqlx.NewDb(stdlib.OpenDBFromPool(pool), "pgx")
	if cfg.Database.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	}

	return &Database{DB: db, Pool: pool, driver: config.DriverPostgres, log: logger}, nil
}

// newQueryTracer chains the New Relic tracer when APM is on, the slow query
// logger when a threshold is set and, in the local environment, a SQL trace
// logger.
func newQueryTracer(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) pgx.QueryTracer {
	var tracers []pgx.QueryTracer

	if loggerService.GetApplication() != nil {
		tracers = append(tracers, nrpgx5.NewTracer())
	}

	if obs := cfg.Observability; obs != nil && obs.Logging.SlowQueryThreshold > 0 {
		tracers = append(tracers, &slowQueryTracer{threshold: obs.Logging.SlowQueryThreshold, logger: logger})
	}

	if cfg.Primary.Env == "local" {
		globalLevel := logger.GetLevel()
		tracers = append(tracers, &tracelog.TraceLog{
			Logger:   pgxzero.NewLogger(loggerConfig.NewPgxLogger(globalLevel)),
			LogLevel: tracelog.LogLevel(loggerConfig.GetPgxTraceLogLevel(globalLevel)),
		})
	}

	switch len(tracers) {
	case 0:
		return nil
	case 1:
		return tracers[0]
	default:
		return &multiTracer{tracers: tracers}
	}
}

func openSQLite(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (*Database, error) {
	db, err := sqlx.Open(sqliteUnicodeDriver, cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	// SQLite serialises writers; one connection also keeps ":memory:"
	// databases alive across calls.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	pingCtx, cancel := context.WithTimeout(ctx, DatabasePingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Database{DB: db, driver: config.DriverSQLite, log: logger}, nil
}

// NewFromDB wraps an already opened handle, e.g. a sqlmock connection.
func NewFromDB(db *sql.DB, driver string, logger *zerolog.Logger) *Database {
	driverName := driver
	if driver == config.DriverPostgres {
		driverName = "pgx"
	}
	return &Database{DB: sqlx.NewDb(db, driverName), driver: driver, log: logger}
}

// Driver returns config.DriverPostgres or config.DriverSQLite.
func (db *Database) Driver() string {
	return db.driver
}

// Ping checks the store is reachable.
func (db *Database) Ping(ctx context.Context) error {
	return db.DB.PingContext(ctx)
}

// Close closes the sql handle and, for Postgres, the underlying pool.
func (db *Database) Close() error {
	db.log.Info().Msg("closing database connection pool")
	err := db.DB.Close()
	if db.Pool != nil {
		db.Pool.Close()
	}
	return err
}
