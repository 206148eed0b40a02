// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

// tokenByteLength is the number of random bytes per token. 32 bytes gives
// 256 bits of entropy, twice the required minimum of 128.
const tokenByteLength = 32

// tokenGenerator is the private implementation of [TokenGenerator] reading
// from the OS CSPRNG.
type tokenGenerator struct{}

// NewTokenGenerator constructs a [TokenGenerator] ready for use.
func NewTokenGenerator() TokenGenerator {
	return &tokenGenerator{}
}

// NewToken implements [TokenGenerator]. The token is base64url-encoded
// without padding so it is safe to carry in cookies and JSON bodies.
func (g *tokenGenerator) NewToken() (string, error) {
	buf := make([]byte, tokenByteLength)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return "", fmt.Errorf("error reading random bytes for token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
