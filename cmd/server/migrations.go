package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"slices"

	"github.com/devsprint/devsprint-api/internal/config"
	"github.com/devsprint/devsprint-api/internal/platform/postgres"
	"github.com/pressly/goose/v3"
)

var migrateCommands = []string{"up", "down", "status", "reset", "version"}

// isValidMigrateCommand reports whether command is a supported -migrate value.
func isValidMigrateCommand(command string) bool {
	return slices.Contains(migrateCommands, command)
}

// slogGooseLogger adapts the goose logger interface to use slog.
type slogGooseLogger struct {
	logger *slog.Logger
}

// Printf forwards goose progress messages at info level.
func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

// Fatalf logs at error level. It does NOT exit; the failing goose call
// returns an error that main handles.
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...))
}

// runMigrations opens the configured database and executes one migration command.
func runMigrations(
	ctx context.Context,
	cfg *config.Config,
	command string,
	verbose bool,
	logger *slog.Logger,
) error {
	logger.Info("executing migrations",
		slog.String("command", command),
		slog.String("database", maskDatabaseURL(cfg.Database.URL)),
		slog.Bool("verbose", verbose))

	db, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error("failed to close database connection", slog.Any("error", closeErr))
		}
	}()

	return executeMigration(ctx, db, command, verbose, logger)
}

// executeMigration runs command against db using the embedded migration files.
func executeMigration(
	ctx context.Context,
	db *sql.DB,
	command string,
	verbose bool,
	logger *slog.Logger,
) error {
	if !isValidMigrateCommand(command) {
		return fmt.Errorf("unknown migration command: %s", command)
	}

	goose.SetBaseFS(postgres.Migrations)
	goose.SetTableName(postgres.MigrationsTable)
	goose.SetLogger(&slogGooseLogger{logger: logger.With(slog.String("component", "goose"))})
	goose.SetVerbose(verbose)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	var err error
	switch command {
	case "up":
		err = goose.UpContext(ctx, db, postgres.MigrationsDir)
	case "down":
		err = goose.DownContext(ctx, db, postgres.MigrationsDir)
	case "status":
		err = goose.StatusContext(ctx, db, postgres.MigrationsDir)
	case "reset":
		err = goose.ResetContext(ctx, db, postgres.MigrationsDir)
	case "version":
		err = goose.VersionContext(ctx, db, postgres.MigrationsDir)
	}
	if err != nil {
		return fmt.Errorf("migration %s failed: %w", command, err)
	}

	logger.Info("migration command completed", slog.String("command", command))
	return nil
}

// maskDatabaseURL masks the password in a database URL for safe logging.
func maskDatabaseURL(dbURL string) string {
	parsedURL, err := url.Parse(dbURL)
	if err != nil {
		return "invalid-url"
	}

	if _, hasPassword := parsedURL.User.Password(); hasPassword {
		return parsedURL.Redacted()
	}

	return dbURL
}

// extractHostFromURL extracts the hostname from a database URL for logging.
func extractHostFromURL(dbURL string) string {
	parsedURL, err := url.Parse(dbURL)
	if err != nil {
		return "unknown"
	}
	return parsedURL.Hostname()
}
