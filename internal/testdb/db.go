//go:build integration

package testdb

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/devsprint/devsprint-api/internal/platform/postgres"
	_ "github.com/jackc/pgx/v5/stdlib" // Register pgx driver for database/sql
	"github.com/pressly/goose/v3"
)

var migrateOnce sync.Once
var migrateErr error

// GetTestDB opens a connection to the test database and brings its schema
// to the latest migration. Migrations run once per test binary.
func GetTestDB() (*sql.DB, error) {
	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		return nil, fmt.Errorf("no test database configured")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", maskDatabaseURL(dbURL), err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", maskDatabaseURL(dbURL), err)
	}

	migrateOnce.Do(func() { migrateErr = ApplyMigrations(db) })
	if migrateErr != nil {
		_ = db.Close()
		return nil, migrateErr
	}
	return db, nil
}

// GetTestDBWithT returns a migrated database connection that is closed when
// the test finishes. The test is skipped when no database is configured.
func GetTestDBWithT(t *testing.T) *sql.DB {
	t.Helper()
	if ShouldSkipDatabaseTest() {
		t.Skip("DATABASE_URL not set - skipping integration test")
	}

	db, err := GetTestDB()
	if err != nil {
		t.Fatalf("failed to get test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// ApplyMigrations runs all pending embedded migrations against db.
func ApplyMigrations(db *sql.DB) error {
	goose.SetBaseFS(postgres.Migrations)
	goose.SetTableName(postgres.MigrationsTable)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.Up(db, postgres.MigrationsDir); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
