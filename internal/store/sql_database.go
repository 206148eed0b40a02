package store

import (
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/migrations"
)

// Dialect names the SQL backend a [DB] talks to. The value doubles as the
// goose dialect string.
type Dialect string

const (
	// DialectPostgres selects the pgx stdlib driver.
	DialectPostgres Dialect = "pgx"

	// DialectSQLite selects the mattn/go-sqlite3 driver.
	DialectSQLite Dialect = "sqlite3"
)

// DialectFromDSN infers the backend dialect from the DSN shape: a
// postgres:// or postgresql:// URI selects PostgreSQL, anything else is
// treated as a SQLite file path.
func DialectFromDSN(dsn string) Dialect {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return DialectPostgres
	}
	return DialectSQLite
}

// DB wraps the standard library connection pool with the dialect it was
// opened for and the matching driver-error classifier.
type DB struct {
	*sql.DB
	dialect         Dialect
	errorClassifier ErrorClassifier
	logger          *logger.Logger
}

// Dialect returns the SQL dialect this connection was opened for.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies all embedded schema migrations for the connection's
// dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// builder returns a squirrel statement builder configured with the
// placeholder format of the connection's dialect ($1 for PostgreSQL,
// ? for SQLite).
func (db *DB) builder() sq.StatementBuilderType {
	if db.dialect == DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}
