package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/movie-api/internal/platform/logger"
	"github.com/phrazzld/movie-api/internal/store"
)

type pinger interface {
	PingContext(ctx context.Context) error
}

// SQLGateway implements store.Gateway on top of database/sql.
type SQLGateway struct {
	db      store.DBTX
	dialect Dialect
	logger  *slog.Logger
}

// NewSQLGateway creates a gateway over a pool or transaction.
// If logger is nil, a default logger will be used.
func NewSQLGateway(db store.DBTX, dialect Dialect, logger *slog.Logger) *SQLGateway {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if dialect == nil {
		dialect = postgresDialect{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &SQLGateway{
		db:      db,
		dialect: dialect,
		logger:  logger.With(slog.String("component", "sql_gateway")),
	}
}

// Ensure SQLGateway implements store.Gateway interface
var _ store.Gateway = (*SQLGateway)(nil)

// Query implements store.Gateway.Query.
// The row cursor is closed before Query returns, whatever each does.
func (g *SQLGateway) Query(ctx context.Context, query string, args []any, each func(store.Scanner) error) error {
	log := logger.FromContextOrDefault(ctx, g.logger)

	rows, err := g.db.QueryContext(ctx, g.dialect.Rebind(query), args...)
	if err != nil {
		log.Debug("query failed", slog.String("error", err.Error()))
		return MapError(err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Warn("failed to close rows", slog.String("error", cerr.Error()))
		}
	}()

	count := 0
	for rows.Next() {
		if err := each(rows); err != nil {
			return err
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return MapError(fmt.Errorf("rows iteration: %w", err))
	}

	log.Debug("query completed", slog.Int("rows", count))
	return nil
}

// Execute implements store.Gateway.Execute.
func (g *SQLGateway) Execute(ctx context.Context, query string, args ...any) (store.ExecResult, error) {
	log := logger.FromContextOrDefault(ctx, g.logger)

	result, err := g.db.ExecContext(ctx, g.dialect.Rebind(query), args...)
	if err != nil {
		log.Debug("statement failed", slog.String("error", err.Error()))
		return store.ExecResult{}, MapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return store.ExecResult{}, fmt.Errorf("failed to get rows affected: %w", err)
	}

	log.Debug("statement executed", slog.Int64("rows_affected", affected))
	return store.ExecResult{AffectedRows: affected}, nil
}

// Insert implements store.Gateway.Insert.
// query must end in RETURNING id; both supported dialects accept it.
func (g *SQLGateway) Insert(ctx context.Context, query string, args ...any) (store.ExecResult, error) {
	log := logger.FromContextOrDefault(ctx, g.logger)

	var id int64
	if err := g.db.QueryRowContext(ctx, g.dialect.Rebind(query), args...).Scan(&id); err != nil {
		log.Debug("insert failed", slog.String("error", err.Error()))
		return store.ExecResult{}, MapError(err)
	}

	log.Debug("row inserted", slog.Int64("insert_id", id))
	return store.ExecResult{AffectedRows: 1, InsertID: id}, nil
}

// Ping implements store.Gateway.Ping.
func (g *SQLGateway) Ping(ctx context.Context) error {
	p, ok := g.db.(pinger)
	if !ok {
		return nil
	}
	return p.PingContext(ctx)
}
