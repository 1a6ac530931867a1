package testdb

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/phrazzld/movie-api/internal/config"
	"github.com/phrazzld/movie-api/internal/platform/database"
	"github.com/phrazzld/movie-api/internal/redact"
)

// TestTimeout bounds setup and teardown statements.
const TestTimeout = 5 * time.Second

// Logger returns a logger that discards everything.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// OpenSQLite returns a migrated in-memory SQLite pool closed on cleanup.
func OpenSQLite(t *testing.T) *database.Pool {
	t.Helper()
	return open(t, config.DatabaseConfig{Driver: config.DriverSQLite, URL: ":memory:", MaxOpenConns: 1})
}

// OpenPostgres returns a migrated PostgreSQL pool for the test database and
// skips the test when no database URL is configured.
func OpenPostgres(t *testing.T) *database.Pool {
	t.Helper()
	if ShouldSkipDatabaseTest() {
		t.Skip("MOVIES_TEST_DATABASE_URL not set - skipping integration test")
	}
	return open(t, config.DatabaseConfig{
		Driver:       config.DriverPostgres,
		URL:          GetTestDatabaseURL(),
		MaxOpenConns: 4,
		MaxIdleConns: 2,
	})
}

func open(t *testing.T, cfg config.DatabaseConfig) *database.Pool {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	pool, err := database.Open(ctx, cfg, Logger())
	require.NoError(t, err, "failed to open %s test database: %s", cfg.Driver, redact.String(cfg.URL))
	t.Cleanup(func() { _ = pool.Close() })

	require.NoError(t, database.Migrate(ctx, pool, Logger()), "failed to migrate test database")
	return pool
}

// WithTx runs fn with a gateway bound to a transaction that is rolled back
// when fn returns, so nothing fn writes outlives the test.
func WithTx(t *testing.T, pool *database.Pool, fn func(t *testing.T, gw *database.SQLGateway)) {
	t.Helper()

	tx, err := pool.DB.BeginTx(context.Background(), nil)
	require.NoError(t, err, "failed to begin transaction")
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Errorf("failed to roll back transaction: %v", err)
		}
	}()

	fn(t, database.NewSQLGateway(tx, pool.Dialect, Logger()))
}
