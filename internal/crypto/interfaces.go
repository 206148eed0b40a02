// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto provides the credential-hashing and token-generation
// primitives consumed by the authentication service. Both capabilities are
// exposed behind small interfaces so the service layer can be tested with
// deterministic fakes.
package crypto

// PasswordHasher is a one-way hash-and-verify capability for user passwords.
//
// Implementations must produce digests that encode their own salt and cost
// parameters, so no external salt storage is needed, and must never log or
// return plaintext passwords.
type PasswordHasher interface {
	// Hash computes a one-way digest of password.
	// Returns an error if the password cannot be hashed (e.g. it exceeds
	// the backend's length limit).
	Hash(password string) (string, error)

	// Verify reports whether password matches digest using a timing-safe
	// comparison. It returns false (never an error or a panic) on a
	// malformed digest.
	Verify(password, digest string) bool
}

// TokenGenerator produces cryptographically random opaque identifiers used
// as session tokens and password-reset tokens.
type TokenGenerator interface {
	// NewToken returns a fresh opaque token with at least 128 bits of
	// entropy. Collisions are negligible; the store-level uniqueness
	// constraints act as a backstop.
	NewToken() (string, error)
}
