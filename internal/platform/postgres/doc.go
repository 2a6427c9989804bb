// Package postgres provides PostgreSQL implementations of the storage
// interfaces defined in internal/store, along with the embedded goose
// migrations that create the users and rules tables.
//
// Connections are opened through database/sql with the pgx stdlib driver
// (driver name "pgx"). Stores accept a store.DBTX so they work against a
// *sql.DB or a *sql.Tx alike.
package postgres
