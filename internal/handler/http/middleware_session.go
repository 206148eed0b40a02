// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Session authentication, logging, tracing, compression,
// and integrity-checking concerns are all handled at this layer before
// requests are forwarded to the service layer.
package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/utils"
)

// sessionAuth is an HTTP middleware that enforces cookie-based session
// authentication.
//
// It reads the session cookie, resolves the opaque token to a user via
// [service.AuthService.UserFromSessionToken], and — on success — stores the
// user's ID and email in the request context under [utils.UserIDCtxKey] and
// [utils.UserEmailCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 403 Forbidden in the following cases:
//   - The session cookie is absent ([ErrNoSessionCookie]).
//   - The cookie's token resolves to no live session ([ErrInvalidSession]).
//
// A storage failure during token resolution yields HTTP 500. All rejection
// events are logged using the context-scoped logger obtained via
// [logger.FromRequest].
func (h *Handler) sessionAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(h.sessionCookieName)
		if err != nil {
			log.Err(ErrNoSessionCookie).Send()
			http.Error(w, ErrNoSessionCookie.Error(), http.StatusForbidden)
			return
		}

		ctx := r.Context()
		sessionUser, found, err := h.services.AuthService.UserFromSessionToken(ctx, cookie.Value)
		if err != nil {
			log.Err(err).Msg("error occurred during session lookup")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		if !found {
			log.Err(ErrInvalidSession).Send()
			http.Error(w, ErrInvalidSession.Error(), http.StatusForbidden)
			return
		}

		// Store the authenticated user's identity in the context so that
		// downstream handlers can retrieve it without a second lookup.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, sessionUser.UserID)
		ctx = context.WithValue(ctx, utils.UserEmailCtxKey, sessionUser.Email)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
