// Package main implements the entry point for the movie API server,
// a JSON REST service for creating, listing, editing and deleting movies.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/phrazzld/movie-api/internal/config"
	"github.com/phrazzld/movie-api/internal/platform/database"
	"github.com/phrazzld/movie-api/internal/platform/logger"
)

// options are the command-line flags.
type options struct {
	configFile  string
	migrateOnly bool
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := pflag.NewFlagSet("movie-api", pflag.ContinueOnError)
	fs.StringVarP(&opts.configFile, "config", "c", "", "path to a YAML config file")
	fs.BoolVar(&opts.migrateOnly, "migrate-only", false, "apply database migrations and exit")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// run loads configuration, wires the application and serves until ctx is done.
func run(ctx context.Context, opts options) error {
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	l.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("database_driver", cfg.Database.Driver))

	pool, err := database.Open(ctx, cfg.Database, l)
	if err != nil {
		return err
	}

	if opts.migrateOnly || cfg.Database.MigrateOnStart {
		if err := database.Migrate(ctx, pool, l); err != nil {
			_ = pool.Close()
			return err
		}
	}
	if opts.migrateOnly {
		return pool.Close()
	}

	app := newApplication(cfg, l, pool)
	return app.startHTTPServer(ctx, app.setupRouter(ctx))
}
