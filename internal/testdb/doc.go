// Package testdb provides helpers for integration tests that need a real
// PostgreSQL database.
//
// Tests using it are skipped unless DATABASE_URL (or RTDC_TEST_DATABASE_URL)
// is set. Schema setup runs the embedded goose migrations from the postgres
// package, and WithTx gives each test an isolated transaction that is always
// rolled back.
//
//	func TestSomething(t *testing.T) {
//		db := testdb.GetTestDBWithT(t)
//		testdb.SetupTestDatabaseSchema(t, db)
//
//		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//			// use tx
//		})
//	}
package testdb
