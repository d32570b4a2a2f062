package handlers

import (
	"github.com/rangevault/rangevault/internal/auth"
	"github.com/rangevault/rangevault/internal/review"
	"github.com/rangevault/rangevault/internal/services"
)

// HTTPLogger is an interface for loggers that support HTTP logging control
type HTTPLogger interface {
	IsHTTPLoggingEnabled() bool
}

// Handlers holds all HTTP handler dependencies
type Handlers struct {
	Ranges  services.RangeServicer
	Users   services.UserServicer
	Review  services.ReviewServicer
	Auth    *auth.Auth
	Session *review.SessionHandler
	Log     HTTPLogger
}

// New creates a new Handlers instance with all dependencies
func New(
	ranges services.RangeServicer,
	users services.UserServicer,
	reviewSvc services.ReviewServicer,
	tokenAuth *auth.Auth,
	session *review.SessionHandler,
	log HTTPLogger,
) *Handlers {
	return &Handlers{
		Ranges:  ranges,
		Users:   users,
		Review:  reviewSvc,
		Auth:    tokenAuth,
		Session: session,
		Log:     log,
	}
}

// NoopHTTPLogger is a test logger that always returns false for HTTP logging
type NoopHTTPLogger struct{}

func (NoopHTTPLogger) IsHTTPLoggingEnabled() bool { return false }
