package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// user fails because a user with the same email already exists in the
	// database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match exactly
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrAmbiguousQuery is returned when a lookup predicate references a
	// field outside the closed [UserField] enumeration. This indicates a
	// programming error, not a user-facing condition.
	ErrAmbiguousQuery = errors.New("lookup predicate references an unknown field")

	// ErrInvalidField is returned when an update targets a field that is
	// not a recognized mutable attribute (email is immutable after
	// creation).
	ErrInvalidField = errors.New("field is not a mutable user attribute")

	// ErrSessionTokenConflict is returned when persisting a freshly
	// generated session token trips the uniqueness constraint. The chance
	// of a genuine collision is negligible; the service layer retries once.
	ErrSessionTokenConflict = errors.New("session token already in use")

	// ErrResetTokenConflict is the reset-token counterpart of
	// [ErrSessionTokenConflict].
	ErrResetTokenConflict = errors.New("reset token already in use")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. an empty update map).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan user row")
)
