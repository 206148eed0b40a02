package utils

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, int64(42))

	userID, ok := GetUserIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, int64(42), userID)

	_, ok = GetUserIDFromContext(context.Background())
	assert.False(t, ok)

	// wrong type under the key
	ctx = context.WithValue(context.Background(), UserIDCtxKey, "42")
	_, ok = GetUserIDFromContext(ctx)
	assert.False(t, ok)
}

func TestGetUserEmailFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserEmailCtxKey, "bob@example.com")

	email, ok := GetUserEmailFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "bob@example.com", email)

	_, ok = GetUserEmailFromContext(context.Background())
	assert.False(t, ok)
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	n, err := WriteJSON(rec, map[string]string{"email": "bob@example.com"}, 201)
	require.NoError(t, err)
	assert.Positive(t, n)
	assert.Equal(t, 201, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "bob@example.com", body["email"])
}

func TestWriteJSON_MarshalError(t *testing.T) {
	rec := httptest.NewRecorder()

	_, err := WriteJSON(rec, func() {}, 200)
	require.Error(t, err)
	assert.Equal(t, 500, rec.Code)
}

func TestHash_MatchesDirectHMAC(t *testing.T) {
	InitHasherPool("secret-key")

	data := []byte("payload")
	got := Hash(data)

	mac := hmac.New(sha256.New, []byte("secret-key"))
	mac.Write(data)
	want := mac.Sum(nil)

	assert.Equal(t, want, got)

	// pooled hasher must be clean for the next caller
	assert.Equal(t, want, Hash(data))
}

func TestHashString(t *testing.T) {
	got := HashString("payload", "secret-key")

	mac := hmac.New(sha256.New, []byte("secret-key"))
	mac.Write([]byte("payload"))
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), got)
}

func TestUUIDGenerator(t *testing.T) {
	g := NewUUIDGenerator()

	first := g.Generate()
	second := g.Generate()

	assert.NotEqual(t, first, second)
	_, err := uuid.Parse(first)
	assert.NoError(t, err)
}

func TestNewHTTPClient(t *testing.T) {
	a := NewHTTPClient()
	b := NewHTTPClient()

	require.NotNil(t, a.Client)
	assert.NotSame(t, a.Client, b.Client)
}
