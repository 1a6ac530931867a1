// Package testdb provides database helpers for tests.
//
// OpenSQLite gives every test its own migrated in-memory SQLite database and
// needs no external services. OpenPostgres connects to the database named by
// MOVIES_TEST_DATABASE_URL (or DATABASE_URL) and skips the test when neither
// is set; WithTx then isolates a test inside a transaction that is always
// rolled back.
//
//	func TestSomething(t *testing.T) {
//	    pool := testdb.OpenPostgres(t)
//	    testdb.WithTx(t, pool, func(t *testing.T, gw *database.SQLGateway) {
//	        movies := database.NewSQLMovieStore(gw, nil)
//	        ...
//	    })
//	}
package testdb
