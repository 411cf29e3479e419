// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces (repositories) defined in the internal/store package.
// It handles the details of database connections, query execution, and data
// mapping between domain entities and database records.
//
// Schema migrations are embedded from the migrations directory and applied
// with goose through Migrate.
package postgres
