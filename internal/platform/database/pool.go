package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // Register pgx as database/sql driver
	_ "modernc.org/sqlite"             // Register sqlite as database/sql driver

	"github.com/phrazzld/movie-api/internal/config"
)

// pingTimeout bounds the connectivity check performed by Open.
const pingTimeout = 5 * time.Second

// Pool is the process-wide connection pool together with its dialect.
// It is created once at startup and closed on shutdown.
type Pool struct {
	DB      *sql.DB
	Dialect Dialect
}

// Open establishes a connection pool for cfg and verifies it with a ping.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*Pool, error) {
	if logger == nil {
		logger = slog.Default()
	}

	dialect, err := NewDialect(cfg.Driver)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(dialect.DriverName(), cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	configurePool(db, dialect, cfg)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("database connection established",
		slog.String("driver", dialect.Name()),
		slog.Int("max_open_conns", cfg.MaxOpenConns))

	return &Pool{DB: db, Dialect: dialect}, nil
}

// configurePool applies the pool limits. SQLite gets a single long-lived
// connection: one writer at a time, and an in-memory database lives only as
// long as its connection.
func configurePool(db *sql.DB, dialect Dialect, cfg config.DatabaseConfig) {
	if dialect.Name() == config.DriverSQLite {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
		return
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime())
}

// Gateway returns a store.Gateway backed by the pool.
func (p *Pool) Gateway(logger *slog.Logger) *SQLGateway {
	return NewSQLGateway(p.DB, p.Dialect, logger)
}

// Close releases every pooled connection.
func (p *Pool) Close() error {
	if p == nil || p.DB == nil {
		return nil
	}
	return p.DB.Close()
}
