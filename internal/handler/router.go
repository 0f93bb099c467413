package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/comigor/saturday-go/internal/middleware"
)

// NewRouter wires HTTP routes to the controller.
func NewRouter(h *Handler, authLimiter *middleware.RateLimiter, metricsHandler http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS)

	r.Route("/api", func(api chi.Router) {
		api.Group(func(auth chi.Router) {
			if authLimiter != nil {
				auth.Use(authLimiter.Middleware)
			}
			auth.Post("/login", h.handleLogin)
			auth.Post("/register", h.handleRegister)
			auth.Post("/guest", h.handleGuest)
		})

		api.Post("/logout", h.handleLogout)
		api.Post("/chat/send", h.handleSend)
		api.Get("/state", h.handleState)
		api.Get("/stream", h.handleStream)
	})

	if metricsHandler != nil {
		r.Handle("/metrics", metricsHandler)
	}

	return r
}
