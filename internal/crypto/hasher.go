// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher is the private implementation of [PasswordHasher] backed by
// golang.org/x/crypto/bcrypt. The produced digest embeds the salt and the
// cost factor, so Verify needs nothing beyond the digest itself.
type bcryptHasher struct {
	// cost is the bcrypt cost factor used for new digests. Existing digests
	// verify with the cost they were created with.
	cost int
}

// NewPasswordHasher constructs a [PasswordHasher] with the given bcrypt cost
// factor. A cost of zero selects bcrypt.DefaultCost.
func NewPasswordHasher(cost int) PasswordHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

// Hash implements [PasswordHasher]. bcrypt generates a random salt per call,
// so hashing the same password twice yields different digests; only
// Verify(password, Hash(password)) is guaranteed to succeed.
func (b *bcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// Verify implements [PasswordHasher]. bcrypt's comparison is constant-time
// with respect to the digest contents; malformed digests simply fail to
// parse and report a mismatch.
func (b *bcryptHasher) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
