package service

import (
	"context"

	"github.com/MKhiriev/go-auth-service/models"
)

// AuthService is the orchestration core of the application: it implements
// registration, credential verification, session lifecycle, and the
// password-reset flow by composing the user repository with the credential
// hasher and the token generator.
//
// The service keeps no per-user state between calls; every operation
// re-reads and re-writes through the repository, which is the sole source
// of truth. It is safe for concurrent use.
type AuthService interface {
	// Register creates a new account for email, hashing password before it
	// ever reaches storage. Returns [ErrUserAlreadyExists] if the email is
	// taken and [ErrInvalidDataProvided] on empty credentials. The returned
	// user carries no password digest.
	Register(ctx context.Context, email, password string) (models.User, error)

	// ValidLogin reports whether the supplied credentials match a stored
	// account. Unknown emails and wrong passwords both yield (false, nil):
	// the response shape never reveals whether the account exists. A
	// non-nil error indicates a storage failure, not bad credentials.
	ValidLogin(ctx context.Context, email, password string) (bool, error)

	// CreateSession generates a fresh session token, persists it on the
	// user identified by email, and returns it. The caller contract
	// requires a preceding successful ValidLogin. Returns
	// [store.ErrNoUserWasFound] if the email is unknown.
	CreateSession(ctx context.Context, email string) (string, error)

	// UserFromSessionToken resolves an opaque session token to its user.
	// A missing or empty token is a normal "not logged in" condition and
	// yields (zero, false, nil), not an error.
	UserFromSessionToken(ctx context.Context, sessionToken string) (models.User, bool, error)

	// DestroySession clears the session token of the given user. Clearing
	// an already-absent token is a no-op success.
	DestroySession(ctx context.Context, userID int64) error

	// ResetPasswordToken generates and persists a fresh password-reset
	// token for email, overwriting any prior one: only the most recent
	// reset request stays valid. Returns [store.ErrNoUserWasFound] if the
	// email is unknown.
	ResetPasswordToken(ctx context.Context, email string) (string, error)

	// UpdatePassword consumes resetToken to replace the user's password.
	// The digest replacement and the token clearing happen in one atomic
	// update. Returns [ErrInvalidResetToken] when the stored token is
	// absent or does not match, and [store.ErrNoUserWasFound] for unknown
	// emails.
	UpdatePassword(ctx context.Context, email, resetToken, newPassword string) error
}
