package database

import (
	"fmt"
	"regexp"

	"github.com/pressly/goose/v3"

	"github.com/phrazzld/movie-api/internal/config"
)

// Dialect abstracts the differences between the supported databases.
// Statements are written with PostgreSQL-style $n placeholders and rebound
// per dialect.
type Dialect interface {
	// Name returns "postgres" or "sqlite".
	Name() string

	// DriverName returns the database/sql driver name ("pgx" or "sqlite").
	DriverName() string

	// Rebind rewrites $n placeholders into the dialect's syntax.
	Rebind(query string) string

	// Goose returns the migration dialect.
	Goose() goose.Dialect
}

// NewDialect returns the dialect for a configured driver name.
func NewDialect(driver string) (Dialect, error) {
	switch driver {
	case config.DriverPostgres, "":
		return postgresDialect{}, nil
	case config.DriverSQLite:
		return sqliteDialect{}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

type postgresDialect struct{}

func (postgresDialect) Name() string               { return config.DriverPostgres }
func (postgresDialect) DriverName() string         { return "pgx" }
func (postgresDialect) Rebind(query string) string { return query }
func (postgresDialect) Goose() goose.Dialect       { return goose.DialectPostgres }

var dollarPlaceholder = regexp.MustCompile(`\$(\d+)`)

type sqliteDialect struct{}

func (sqliteDialect) Name() string       { return config.DriverSQLite }
func (sqliteDialect) DriverName() string { return "sqlite" }

// Rebind turns $1 into ?1, which SQLite binds by position.
func (sqliteDialect) Rebind(query string) string {
	return dollarPlaceholder.ReplaceAllString(query, "?$1")
}

func (sqliteDialect) Goose() goose.Dialect { return goose.DialectSQLite3 }
