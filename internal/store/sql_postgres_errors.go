package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresErrorClassifier implements [ErrorClassifier] for PostgreSQL.
// It inspects the pgconn error code and the violated constraint name
// returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Constraint names as declared in migrations/postgres/00001_create_users.sql.
const (
	emailConstraint        = "users_email_key"
	sessionTokenConstraint = "users_session_token_key"
	resetTokenConstraint   = "users_reset_token_key"
)

// UniqueViolation implements [ErrorClassifier]. It attempts to unwrap err as
// a *pgconn.PgError carrying code 23505 (unique_violation) and maps the
// violated constraint name to a [UniqueViolation] value. Any other error
// yields [NoViolation].
func (c *PostgresErrorClassifier) UniqueViolation(err error) UniqueViolation {
	if err == nil {
		return NoViolation
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return NoViolation
	}

	switch pgErr.ConstraintName {
	case emailConstraint:
		return EmailViolation
	case sessionTokenConstraint:
		return SessionTokenViolation
	case resetTokenConstraint:
		return ResetTokenViolation
	}

	return NoViolation
}
