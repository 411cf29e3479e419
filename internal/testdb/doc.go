//go:build integration

// Package testdb provides helpers for tests that run against a real
// PostgreSQL database.
//
// Each test runs in its own transaction, which is rolled back when the test
// completes, so tests can share one database and run in parallel:
//
//	func TestMyFeature(t *testing.T) {
//	    db := testdb.GetTestDBWithT(t)
//
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        posts := postgres.NewPostgresPostStore(tx, nil)
//	        // ...
//	    })
//	}
//
// Tests are skipped when no database URL is configured. The URL is read
// from BLOG_TEST_DATABASE_URL, then DATABASE_URL.
package testdb
