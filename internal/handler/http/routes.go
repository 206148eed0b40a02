package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if h.hashKey != "" {
		router.Use(h.withIntegrityCheck)
	}

	// routes without a session
	router.Group(func(r chi.Router) {
		r.Post("/api/v1/users", h.register)
		r.Post("/api/v1/auth_session/login", h.login)
		r.Post("/api/v1/auth_session/reset_password", h.resetPassword)
		r.Put("/api/v1/auth_session/reset_password", h.updatePassword)
	})

	// routes requiring a live session
	router.Group(func(r chi.Router) {
		r.Use(h.sessionAuth)
		r.Get("/api/v1/users/me", h.profile)
		r.Delete("/api/v1/auth_session/logout", h.logout)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
