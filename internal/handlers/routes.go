package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// conditionalHTTPLogger only logs HTTP requests when HTTP logging is enabled
func (h *Handlers) conditionalHTTPLogger(next http.Handler) http.Handler {
	logger := middleware.Logger(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.Log != nil && h.Log.IsHTTPLoggingEnabled() {
			logger.ServeHTTP(w, r)
		} else {
			next.ServeHTTP(w, r)
		}
	})
}

// Router returns a configured chi router with all routes
func (h *Handlers) Router() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.conditionalHTTPLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RedirectSlashes)
	r.Use(middleware.Timeout(60 * time.Second))

	// Auth (public)
	r.Post("/api/auth/register", h.handleRegister)
	r.Post("/api/auth/login", h.handleLogin)

	// Hand review (public; the engine is pure and touches no user data)
	r.Get("/api/review/actions", h.handleAvailableActions)
	r.Post("/api/review/resolve", h.handleResolveAction)
	r.Get("/api/review/session", h.Session.Serve)

	// Range sets (protected)
	r.Group(func(r chi.Router) {
		r.Use(h.Auth.RequireAuthAPI)

		r.Get("/api/ranges", h.handleListRanges)
		r.Post("/api/ranges", h.handleCreateRange)
		r.Get("/api/ranges/skeleton", h.handleGetSkeleton) // before /api/ranges/{id}
		r.Get("/api/ranges/{id}", h.handleGetRange)
		r.Put("/api/ranges/{id}", h.handleUpdateRange)
		r.Delete("/api/ranges/{id}", h.handleDeleteRange)
		r.Get("/api/ranges/{id}/qr", h.handleRangeQR)

		r.Delete("/api/account", h.handleDeleteAccount)
	})

	return r
}
