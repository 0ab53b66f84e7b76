// Package main implements the entry point for the DevSprint API server,
// a Kanban-style board where leads run projects and devs work their tasks.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/devsprint/devsprint-api/internal/config"
)

// cliOptions holds the parsed command-line flags.
type cliOptions struct {
	migrateCmd string
	verbose    bool
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts); err != nil {
		log.Printf("devsprint-api: %v", err)
		stop()
		os.Exit(1)
	}
}

// parseFlags parses the server's command-line flags.
func parseFlags(args []string, output io.Writer) (cliOptions, error) {
	var opts cliOptions

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.migrateCmd, "migrate", "",
		"Run database migrations and exit: up, down, status, reset, version")
	fs.BoolVar(&opts.verbose, "verbose", false, "Enable verbose migration logging")

	if err := fs.Parse(args); err != nil {
		return cliOptions{}, err
	}
	if opts.migrateCmd != "" && !isValidMigrateCommand(opts.migrateCmd) {
		fmt.Fprintf(output, "unknown migrate command %q\n", opts.migrateCmd)
		fs.Usage()
		return cliOptions{}, fmt.Errorf("unknown migrate command %q", opts.migrateCmd)
	}
	return opts, nil
}

// run loads configuration and either executes a migration command or serves
// the API until ctx is canceled.
func run(ctx context.Context, opts cliOptions) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	if opts.migrateCmd != "" {
		return runMigrations(ctx, cfg, opts.migrateCmd, opts.verbose, logger)
	}

	db, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}

	if cfg.Database.AutoMigrate {
		logger.Info("applying pending migrations before start")
		if err := executeMigration(ctx, db, "up", opts.verbose, logger); err != nil {
			_ = db.Close()
			return fmt.Errorf("auto-migrate failed: %w", err)
		}
	}

	app, err := newApplication(cfg, logger, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}

// loadAppConfig loads the application configuration from environment variables or config file.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// logStartupConfig records the non-secret configuration the server runs with.
func logStartupConfig(cfg *config.Config, logger *slog.Logger) {
	logger.Info("server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.Bool("log_file", cfg.Server.LogFile != ""),
		slog.Int("token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes),
		slog.Bool("auto_migrate", cfg.Database.AutoMigrate))
	logger.Debug("database configuration",
		slog.String("url", maskDatabaseURL(cfg.Database.URL)),
		slog.Int("max_open_conns", cfg.Database.MaxOpenConns),
		slog.Int("max_idle_conns", cfg.Database.MaxIdleConns))
}
