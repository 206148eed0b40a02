// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials carries an email/password pair submitted for registration or
// login. The password is plaintext in flight only; it is hashed before it
// reaches storage and never logged.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PasswordResetRequest asks for a fresh reset token for an existing account.
type PasswordResetRequest struct {
	Email string `json:"email"`
}

// PasswordUpdateRequest consumes a reset token to replace a password.
type PasswordUpdateRequest struct {
	Email       string `json:"email"`
	ResetToken  string `json:"reset_token"`
	NewPassword string `json:"new_password"`
}
