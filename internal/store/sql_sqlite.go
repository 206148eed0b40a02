package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-auth-service/internal/config"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	_ "github.com/mattn/go-sqlite3" // database/sql driver "sqlite3"
)

// NewConnectSQLite opens a SQLite-backed [DB], verifies the connection with
// a ping, and attaches the SQLite error classifier.
//
// The connection pool is limited to a single open connection: SQLite
// serialises writers, and a single pooled connection avoids SQLITE_BUSY
// errors under concurrent request load.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open(string(DialectSQLite), cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(1)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:              conn,
		dialect:         DialectSQLite,
		logger:          log,
		errorClassifier: NewSQLiteErrorClassifier(),
	}

	return db, nil
}
