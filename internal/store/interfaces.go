package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-auth-service/models"
)

// UserRepository is the persistence abstraction over user records consumed
// by the service layer. Implementations must provide per-row atomicity: a
// concurrent reader observes either the fully-old or fully-new row, never a
// partial update.
type UserRepository interface {
	// CreateUser persists a new user with the given email and password
	// digest. Returns [ErrEmailAlreadyExists] if the email is taken; the
	// uniqueness check is enforced atomically by the database.
	CreateUser(ctx context.Context, email, passwordDigest string) (models.User, error)

	// FindUserBy returns the single user matching all given field/value
	// conditions. Returns [ErrNoUserWasFound] on zero matches and
	// [ErrAmbiguousQuery] if a condition references an unknown field.
	FindUserBy(ctx context.Context, conditions map[UserField]any) (models.User, error)

	// UpdateUser applies the given field/value changes to the user row
	// identified by userID in a single atomic statement. Returns
	// [ErrNoUserWasFound] if the id is absent and [ErrInvalidField] if a
	// key is not a recognized mutable attribute (email is immutable).
	UpdateUser(ctx context.Context, userID int64, changes map[UserField]any) error

	// ClearStaleResetTokens discards reset tokens issued before olderThan
	// and reports how many rows were touched.
	ClearStaleResetTokens(ctx context.Context, olderThan time.Time) (int64, error)
}

// ErrorClassifier inspects driver-level errors and reports which uniqueness
// constraint, if any, was violated. Each SQL dialect provides its own
// implementation.
type ErrorClassifier interface {
	// UniqueViolation returns the violated constraint for err, or
	// [NoViolation] if err is not a unique-constraint violation.
	UniqueViolation(err error) UniqueViolation
}

// UniqueViolation identifies which uniqueness constraint a failed statement
// tripped over.
type UniqueViolation int

const (
	// NoViolation means the error was not a unique-constraint violation.
	NoViolation UniqueViolation = iota

	// EmailViolation means the users.email uniqueness constraint fired.
	EmailViolation

	// SessionTokenViolation means the users.session_token uniqueness
	// constraint fired. Treated as a negligible-probability token collision
	// and retried once by the service layer.
	SessionTokenViolation

	// ResetTokenViolation means the users.reset_token uniqueness constraint
	// fired. Also a negligible-probability collision.
	ResetTokenViolation
)
