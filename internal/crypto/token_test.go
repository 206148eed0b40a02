package crypto

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewToken_LengthAndEncoding(t *testing.T) {
	gen := NewTokenGenerator()

	token, err := gen.NewToken()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	raw, err := base64.RawURLEncoding.DecodeString(token)
	require.NoError(t, err)
	assert.Len(t, raw, tokenByteLength)
}

func TestNewToken_Unique(t *testing.T) {
	gen := NewTokenGenerator()

	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		token, err := gen.NewToken()
		require.NoError(t, err)

		_, dup := seen[token]
		require.False(t, dup, "duplicate token generated: %s", token)
		seen[token] = struct{}{}
	}
}
