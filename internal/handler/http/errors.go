// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the session middleware when resolving the session
// cookie. Callers can match against them with [errors.Is].
var (
	// ErrNoSessionCookie is returned when the incoming request carries no
	// session cookie at all.
	ErrNoSessionCookie = errors.New("no session cookie")

	// ErrInvalidSession is returned when the cookie is present but its token
	// resolves to no live session (logged out, never issued, or revoked).
	ErrInvalidSession = errors.New("invalid or expired session")
)
