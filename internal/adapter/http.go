package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/utils"
	"github.com/MKhiriev/go-auth-service/models"
)

// sessionCookieName must match the server's App.SessionCookieName default.
const sessionCookieName = "_my_session_id"

type httpAuthAdapter struct {
	client *utils.HTTPClient

	sessionToken string

	logger *logger.Logger
}

// NewHTTPAuthAdapter constructs an HTTP/REST implementation of [AuthAdapter].
// It normalises and validates the base URL from address and configures the
// underlying HTTP client with the resolved base URL and request timeout.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewHTTPAuthAdapter(address string, timeout time.Duration, logger *logger.Logger) (AuthAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL + "/api/v1").
		SetTimeout(timeout)

	return &httpAuthAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetSessionToken implements [AuthAdapter]. It stores token
// (whitespace-trimmed) for use as the session cookie of all subsequent
// authenticated requests.
func (h *httpAuthAdapter) SetSessionToken(token string) {
	h.sessionToken = strings.TrimSpace(token)
}

// SessionToken implements [AuthAdapter].
func (h *httpAuthAdapter) SessionToken() string {
	return h.sessionToken
}

// Register implements [AuthAdapter]. It POSTs the credentials to /users and
// decodes the created user from the response body.
func (h *httpAuthAdapter) Register(ctx context.Context, creds models.Credentials) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/users")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var created struct {
		ID    int64  `json:"id"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(resp.Body(), &created); err != nil {
		return models.User{}, fmt.Errorf("decoding register response: %w", err)
	}

	return models.User{UserID: created.ID, Email: created.Email}, nil
}

// Login implements [AuthAdapter]. On success the session token is extracted
// from the response's session cookie and stored via SetSessionToken.
func (h *httpAuthAdapter) Login(ctx context.Context, creds models.Credentials) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/auth_session/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Name == sessionCookieName {
			h.SetSessionToken(cookie.Value)
			return nil
		}
	}

	return fmt.Errorf("no %s cookie in login response", sessionCookieName)
}

// Profile implements [AuthAdapter].
func (h *httpAuthAdapter) Profile(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetCookie(h.sessionCookie()).
		Get("/users/me")
	if err != nil {
		return "", fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var profile struct {
		Email string `json:"email"`
	}
	if err := json.Unmarshal(resp.Body(), &profile); err != nil {
		return "", fmt.Errorf("decoding profile response: %w", err)
	}

	return profile.Email, nil
}

// Logout implements [AuthAdapter]. The locally held token is cleared even
// though the server also expires the cookie.
func (h *httpAuthAdapter) Logout(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetCookie(h.sessionCookie()).
		Delete("/auth_session/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.sessionToken = ""
	return nil
}

// RequestPasswordReset implements [AuthAdapter].
func (h *httpAuthAdapter) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.PasswordResetRequest{Email: email}).
		Post("/auth_session/reset_password")
	if err != nil {
		return "", fmt.Errorf("reset request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var reset struct {
		ResetToken string `json:"reset_token"`
	}
	if err := json.Unmarshal(resp.Body(), &reset); err != nil {
		return "", fmt.Errorf("decoding reset response: %w", err)
	}
	if reset.ResetToken == "" {
		return "", fmt.Errorf("empty reset token in response")
	}

	return reset.ResetToken, nil
}

// UpdatePassword implements [AuthAdapter].
func (h *httpAuthAdapter) UpdatePassword(ctx context.Context, req models.PasswordUpdateRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put("/auth_session/reset_password")
	if err != nil {
		return fmt.Errorf("password update request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAuthAdapter) sessionCookie() *http.Cookie {
	return &http.Cookie{Name: sessionCookieName, Value: h.sessionToken}
}
