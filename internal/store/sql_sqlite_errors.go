package store

import (
	"errors"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// SQLiteErrorClassifier implements [ErrorClassifier] for SQLite.
//
// The sqlite3 driver does not expose the violated constraint name as a
// structured field, so the classifier matches the "UNIQUE constraint
// failed: users.<column>" message produced by SQLite.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// UniqueViolation implements [ErrorClassifier].
func (c *SQLiteErrorClassifier) UniqueViolation(err error) UniqueViolation {
	if err == nil {
		return NoViolation
	}

	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return NoViolation
	}

	if sqliteErr.ExtendedCode != sqlite3.ErrConstraintUnique &&
		sqliteErr.ExtendedCode != sqlite3.ErrConstraintPrimaryKey {
		return NoViolation
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "users.email"):
		return EmailViolation
	case strings.Contains(msg, "users.session_token"):
		return SessionTokenViolation
	case strings.Contains(msg, "users.reset_token"):
		return ResetTokenViolation
	}

	return NoViolation
}
