package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"path"

	"github.com/pressly/goose/v3"
)

//go:embed migrations
var migrationsFS embed.FS

// Migrate brings the schema up to date with the embedded migrations for the
// pool's dialect. It is safe to call on every start.
func Migrate(ctx context.Context, pool *Pool, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	fsys, err := fs.Sub(migrationsFS, path.Join("migrations", pool.Dialect.Name()))
	if err != nil {
		return fmt.Errorf("failed to locate migrations for %s: %w", pool.Dialect.Name(), err)
	}

	provider, err := goose.NewProvider(pool.Dialect.Goose(), pool.DB, fsys)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	for _, r := range results {
		logger.Info("migration applied",
			slog.Int64("version", r.Source.Version),
			slog.Duration("duration", r.Duration))
	}
	logger.Info("database schema up to date", slog.Int("applied", len(results)))
	return nil
}
