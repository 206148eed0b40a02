// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-auth-service/internal/config"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/service"
	"github.com/MKhiriev/go-auth-service/internal/store"
	"github.com/MKhiriev/go-auth-service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn       func(ctx context.Context, email, password string) (models.User, error)
	validLoginFn     func(ctx context.Context, email, password string) (bool, error)
	createSessionFn  func(ctx context.Context, email string) (string, error)
	userFromTokenFn  func(ctx context.Context, sessionToken string) (models.User, bool, error)
	destroySessionFn func(ctx context.Context, userID int64) error
	resetTokenFn     func(ctx context.Context, email string) (string, error)
	updatePasswordFn func(ctx context.Context, email, resetToken, newPassword string) error
}

func (m *mockAuthService) Register(ctx context.Context, email, password string) (models.User, error) {
	return m.registerFn(ctx, email, password)
}

func (m *mockAuthService) ValidLogin(ctx context.Context, email, password string) (bool, error) {
	return m.validLoginFn(ctx, email, password)
}

func (m *mockAuthService) CreateSession(ctx context.Context, email string) (string, error) {
	return m.createSessionFn(ctx, email)
}

func (m *mockAuthService) UserFromSessionToken(ctx context.Context, sessionToken string) (models.User, bool, error) {
	return m.userFromTokenFn(ctx, sessionToken)
}

func (m *mockAuthService) DestroySession(ctx context.Context, userID int64) error {
	return m.destroySessionFn(ctx, userID)
}

func (m *mockAuthService) ResetPasswordToken(ctx context.Context, email string) (string, error) {
	return m.resetTokenFn(ctx, email)
}

func (m *mockAuthService) UpdatePassword(ctx context.Context, email, resetToken, newPassword string) error {
	return m.updatePasswordFn(ctx, email, resetToken, newPassword)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithAuth builds a Handler with the given AuthService mock.
func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService: auth,
	}
	return NewHandler(svcs, config.App{}, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// validCreds is a convenience fixture used across multiple tests.
var validCreds = models.Credentials{
	Email:    "alice@example.com",
	Password: "secret",
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

// TestRegister_Success verifies that a valid registration request results in
// 201 Created with the new user's id and email in the body.
func TestRegister_Success(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, email, password string) (models.User, error) {
			assert.Equal(t, validCreds.Email, email)
			assert.Equal(t, validCreds.Password, password)
			return models.User{UserID: 1, Email: email}, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", strings.NewReader(jsonBody(t, validCreds)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp registerResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, validCreds.Email, resp.Email)
	assert.Equal(t, "user created", resp.Message)
}

func TestRegister_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_InvalidEmail(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{
		registerFn: func(_ context.Context, _, _ string) (models.User, error) {
			t.Fatal("Register must not be called for invalid input")
			return models.User{}, nil
		},
	})

	body := jsonBody(t, models.Credentials{Email: "not-an-email", Password: "secret"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_EmailTaken(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, service.ErrUserAlreadyExists
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", strings.NewReader(jsonBody(t, validCreds)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "email already registered")
}

func TestRegister_UnexpectedError(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, errors.New("db down")
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", strings.NewReader(jsonBody(t, validCreds)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

// TestLogin_Success verifies that valid credentials yield 200 OK and a
// session cookie carrying the issued token.
func TestLogin_Success(t *testing.T) {
	const sessionToken = "opaque-session-token"

	auth := &mockAuthService{
		validLoginFn: func(_ context.Context, _, _ string) (bool, error) {
			return true, nil
		},
		createSessionFn: func(_ context.Context, email string) (string, error) {
			assert.Equal(t, validCreds.Email, email)
			return sessionToken, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth_session/login", strings.NewReader(jsonBody(t, validCreds)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "_my_session_id", cookies[0].Name)
	assert.Equal(t, sessionToken, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestLogin_WrongCredentials(t *testing.T) {
	auth := &mockAuthService{
		validLoginFn: func(_ context.Context, _, _ string) (bool, error) {
			return false, nil
		},
		createSessionFn: func(_ context.Context, _ string) (string, error) {
			t.Fatal("CreateSession must not be called for rejected credentials")
			return "", nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth_session/login", strings.NewReader(jsonBody(t, validCreds)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestLogin_StorageError(t *testing.T) {
	auth := &mockAuthService{
		validLoginFn: func(_ context.Context, _, _ string) (bool, error) {
			return false, errors.New("db down")
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth_session/login", strings.NewReader(jsonBody(t, validCreds)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// profile + session middleware (through the router)
// ─────────────────────────────────────────────

func TestProfile_WithValidSession(t *testing.T) {
	auth := &mockAuthService{
		userFromTokenFn: func(_ context.Context, sessionToken string) (models.User, bool, error) {
			if sessionToken == "live-token" {
				return models.User{UserID: 1, Email: "alice@example.com"}, true, nil
			}
			return models.User{}, false, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	req.AddCookie(&http.Cookie{Name: "_my_session_id", Value: "live-token"})
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp messageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "alice@example.com", resp.Email)
}

func TestProfile_NoCookie(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestProfile_StaleSession(t *testing.T) {
	auth := &mockAuthService{
		userFromTokenFn: func(_ context.Context, _ string) (models.User, bool, error) {
			return models.User{}, false, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	req.AddCookie(&http.Cookie{Name: "_my_session_id", Value: "stale-token"})
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestProfile_SessionLookupError(t *testing.T) {
	auth := &mockAuthService{
		userFromTokenFn: func(_ context.Context, _ string) (models.User, bool, error) {
			return models.User{}, false, errors.New("db down")
		},
	}

	h := newHandlerWithAuth(t, auth)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	req.AddCookie(&http.Cookie{Name: "_my_session_id", Value: "any"})
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// logout
// ─────────────────────────────────────────────

func TestLogout_Success(t *testing.T) {
	destroyed := int64(0)
	auth := &mockAuthService{
		userFromTokenFn: func(_ context.Context, _ string) (models.User, bool, error) {
			return models.User{UserID: 7, Email: "alice@example.com"}, true, nil
		},
		destroySessionFn: func(_ context.Context, userID int64) error {
			destroyed = userID
			return nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	router := h.Init()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/auth_session/logout", nil)
	req.AddCookie(&http.Cookie{Name: "_my_session_id", Value: "live-token"})
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), destroyed)

	// session cookie must be expired on the client
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "_my_session_id", cookies[0].Name)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestLogout_NoSession(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	router := h.Init()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/auth_session/logout", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

// ─────────────────────────────────────────────
// resetPassword
// ─────────────────────────────────────────────

func TestResetPassword_Success(t *testing.T) {
	auth := &mockAuthService{
		resetTokenFn: func(_ context.Context, email string) (string, error) {
			assert.Equal(t, "alice@example.com", email)
			return "fresh-reset-token", nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	body := jsonBody(t, models.PasswordResetRequest{Email: "alice@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth_session/reset_password", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.resetPassword(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp resetTokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "alice@example.com", resp.Email)
	assert.Equal(t, "fresh-reset-token", resp.ResetToken)
}

func TestResetPassword_UnknownEmail(t *testing.T) {
	auth := &mockAuthService{
		resetTokenFn: func(_ context.Context, _ string) (string, error) {
			return "", store.ErrNoUserWasFound
		},
	}

	h := newHandlerWithAuth(t, auth)
	body := jsonBody(t, models.PasswordResetRequest{Email: "who@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth_session/reset_password", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.resetPassword(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestResetPassword_MissingEmail(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{
		resetTokenFn: func(_ context.Context, _ string) (string, error) {
			t.Fatal("ResetPasswordToken must not be called for invalid input")
			return "", nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth_session/reset_password", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.resetPassword(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// updatePassword
// ─────────────────────────────────────────────

func TestUpdatePassword_Success(t *testing.T) {
	auth := &mockAuthService{
		updatePasswordFn: func(_ context.Context, email, resetToken, newPassword string) error {
			assert.Equal(t, "alice@example.com", email)
			assert.Equal(t, "reset-token", resetToken)
			assert.Equal(t, "newpass", newPassword)
			return nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	body := jsonBody(t, models.PasswordUpdateRequest{
		Email:       "alice@example.com",
		ResetToken:  "reset-token",
		NewPassword: "newpass",
	})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/auth_session/reset_password", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.updatePassword(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp messageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Password updated", resp.Message)
}

func TestUpdatePassword_InvalidToken(t *testing.T) {
	auth := &mockAuthService{
		updatePasswordFn: func(_ context.Context, _, _, _ string) error {
			return service.ErrInvalidResetToken
		},
	}

	h := newHandlerWithAuth(t, auth)
	body := jsonBody(t, models.PasswordUpdateRequest{
		Email:       "alice@example.com",
		ResetToken:  "forged",
		NewPassword: "newpass",
	})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/auth_session/reset_password", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.updatePassword(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUpdatePassword_UnknownEmail(t *testing.T) {
	auth := &mockAuthService{
		updatePasswordFn: func(_ context.Context, _, _, _ string) error {
			return store.ErrNoUserWasFound
		},
	}

	h := newHandlerWithAuth(t, auth)
	body := jsonBody(t, models.PasswordUpdateRequest{
		Email:       "who@example.com",
		ResetToken:  "reset-token",
		NewPassword: "newpass",
	})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/auth_session/reset_password", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.updatePassword(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUpdatePassword_MissingFields(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{
		updatePasswordFn: func(_ context.Context, _, _, _ string) error {
			t.Fatal("UpdatePassword must not be called for invalid input")
			return nil
		},
	})

	body := jsonBody(t, models.PasswordUpdateRequest{Email: "alice@example.com"})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/auth_session/reset_password", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.updatePassword(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
