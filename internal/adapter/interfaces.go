// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the auth server from client-side tooling.
//
// The primary abstraction is [AuthAdapter], which decouples callers from the
// underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPAuthAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrForbidden] for 403).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-auth-service/models"
)

// AuthAdapter defines transport-agnostic communication with the auth server.
// Implementations are responsible for serialisation, session cookie
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type AuthAdapter interface {
	// SetSessionToken stores the opaque session token that will be attached
	// as the session cookie to all subsequent authenticated requests. It is
	// called automatically after a successful Login.
	SetSessionToken(token string)

	// SessionToken returns the session token currently stored in the
	// adapter, or an empty string if none has been set.
	SessionToken() string

	// Register creates a new account from the given credentials and returns
	// the server-assigned user. Returns [ErrInvalidRequest] (wrapped) when
	// the server rejects the submission, including duplicate emails.
	Register(ctx context.Context, creds models.Credentials) (models.User, error)

	// Login authenticates the credentials and, on success, captures the
	// session cookie via SetSessionToken. Returns [ErrUnauthorized] when the
	// server rejects the credentials.
	Login(ctx context.Context, creds models.Credentials) error

	// Profile fetches the email of the currently logged-in user. Returns
	// [ErrForbidden] when no live session token is held.
	Profile(ctx context.Context) (string, error)

	// Logout destroys the current session on the server and clears the
	// locally held token.
	Logout(ctx context.Context) error

	// RequestPasswordReset asks the server for a fresh reset token for
	// email. Returns [ErrForbidden] for unknown emails.
	RequestPasswordReset(ctx context.Context, email string) (string, error)

	// UpdatePassword consumes a reset token to replace the account password.
	// Returns [ErrForbidden] when the token is rejected.
	UpdatePassword(ctx context.Context, req models.PasswordUpdateRequest) error
}
