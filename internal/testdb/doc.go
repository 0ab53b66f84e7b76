//go:build integration

// Package testdb provides helpers for tests that run against a real
// PostgreSQL database.
//
// Each test runs in its own transaction which is rolled back when the test
// completes, so tests can share one database without cleanup:
//
//	func TestSomething(t *testing.T) {
//	    db := testdb.GetTestDBWithT(t)
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        users := postgres.NewPostgresUserStore(db, nil).WithTx(tx)
//	        // ...
//	    })
//	}
//
// The connection string is read from DATABASE_URL, falling back to
// DEVSPRINT_TEST_DB_URL. Tests are skipped when neither is set.
package testdb
