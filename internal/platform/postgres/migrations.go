package postgres

import "embed"

// MigrationsDir is the directory inside Migrations holding the goose files.
const MigrationsDir = "migrations"

// MigrationsTable is the goose version table name.
const MigrationsTable = "schema_migrations"

// Migrations holds the SQL migration files for goose.SetBaseFS.
//
//go:embed migrations/*.sql
var Migrations embed.FS
