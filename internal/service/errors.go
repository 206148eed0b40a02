package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrUserAlreadyExists is the service-layer presentation of
	// store.ErrEmailAlreadyExists.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrInvalidResetToken is returned when a password update supplies a
	// token that is absent, already consumed, or superseded by a newer
	// reset request. Distinct from storage failures so callers can tell
	// "wrong/used token" apart from a systemic error.
	ErrInvalidResetToken = errors.New("invalid reset token")

	// ErrTokenCreationFailed wraps failures of the random token source.
	ErrTokenCreationFailed = errors.New("token creation failed")
)
