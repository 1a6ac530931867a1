// Package database owns the SQL connection pool and everything that speaks
// SQL: the driver dialects (PostgreSQL through pgx, SQLite through
// modernc.org/sqlite), the store.Gateway implementation, driver error
// mapping, embedded schema migrations and the movie store built on top of
// the gateway.
package database
