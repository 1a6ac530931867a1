package store

import "context"

// Scanner reads the columns of the current row. *sql.Row and *sql.Rows both
// satisfy it.
type Scanner interface {
	Scan(dest ...any) error
}

// ExecResult reports the effect of a mutating statement.
type ExecResult struct {
	AffectedRows int64
	InsertID     int64
}

// Gateway is the only way the application talks to the database.
//
// Every call acquires what it needs from the pool and releases it before
// returning: Query closes its row cursor even when the callback fails, so
// callers never hold a connection between calls.
type Gateway interface {
	// Query runs a read statement and calls each once per returned row.
	// Iteration stops at the first error returned by each.
	Query(ctx context.Context, query string, args []any, each func(Scanner) error) error

	// Execute runs a mutating statement and reports the affected row count.
	Execute(ctx context.Context, query string, args ...any) (ExecResult, error)

	// Insert runs an INSERT ... RETURNING id statement and reports the
	// generated id.
	Insert(ctx context.Context, query string, args ...any) (ExecResult, error)

	// Ping checks that the database is reachable.
	Ping(ctx context.Context) error
}
