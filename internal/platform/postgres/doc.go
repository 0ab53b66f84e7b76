// Package postgres provides PostgreSQL implementations of the persistence
// interfaces defined in internal/store, together with the embedded goose
// migrations that create the schema they query.
//
// Stores accept a store.DBTX so the same code runs against the *sql.DB pool
// or inside a transaction obtained through WithTx.
package postgres
