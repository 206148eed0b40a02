package models

import "time"

// User represents an account entity used for authentication and session
// management. It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// Assigned by the database at creation time and never reused.
	UserID int64 `json:"-"`

	// Email is the unique user identifier used during authentication.
	// It is immutable after the account has been created.
	Email string `json:"email"`

	// PasswordDigest stores the bcrypt digest of the user's password.
	// This value MUST be a one-way digest, never plaintext.
	// It is never exposed via JSON.
	PasswordDigest string `json:"-"`

	// SessionToken is the opaque identifier of the user's active session.
	// An empty string means the user is not logged in. At most one session
	// token exists per user, and no two users share the same token.
	SessionToken string `json:"-"`

	// ResetToken is the opaque single-use password-reset token.
	// An empty string means no reset request is outstanding. Only the most
	// recently issued token is valid.
	ResetToken string `json:"-"`

	// ResetRequestedAt is the timestamp of the last reset-token issuance.
	// Zero when ResetToken is empty. Used by the background sweeper to
	// discard stale reset requests.
	ResetRequestedAt time.Time `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"created_at"`
}

// HasSession reports whether the user currently holds an active session.
func (u User) HasSession() bool {
	return u.SessionToken != ""
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
