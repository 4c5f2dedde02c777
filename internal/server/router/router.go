// Package router wires the HTTP handlers and middleware into one handler.
package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/iudanet/authmodule/internal/server/handlers"
	"github.com/iudanet/authmodule/internal/server/metrics"
	"github.com/iudanet/authmodule/internal/server/middleware"
	"github.com/iudanet/authmodule/internal/server/storage"
	"github.com/iudanet/authmodule/internal/validation"
)

// Store is the part of the credential store used directly by the HTTP layer.
type Store interface {
	storage.UserLister
	storage.Pinger
}

// Deps are the collaborators of the HTTP surface.
type Deps struct {
	Logger         *zap.Logger
	Auth           handlers.AuthService
	Store          Store
	Validator      *validation.Validator
	Metrics        *metrics.Metrics
	AllowedOrigins []string
	Version        string
}

// New builds the routed handler wrapped in the middleware chain
// recovery → request id → logging → metrics → CORS.
func New(d Deps) http.Handler {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	validator := d.Validator
	if validator == nil {
		validator = validation.New()
	}

	authHandler := handlers.NewAuthHandler(logger.Named("http.auth"), d.Auth, validator)
	usersHandler := handlers.NewUsersHandler(logger.Named("http.users"), d.Store)
	healthHandler := handlers.NewHealthHandler(logger.Named("http.health"), d.Store, d.Version)

	r := mux.NewRouter()

	auth := r.PathPrefix("/api/auth").Subrouter()
	auth.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/register", authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/validate", authHandler.Validate).Methods(http.MethodPost)
	auth.HandleFunc("/refresh", authHandler.Refresh).Methods(http.MethodPost)
	auth.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)

	data := r.PathPrefix("/api/data").Subrouter()
	data.Use(middleware.AdminMiddleware(logger.Named("http.admin"), d.Auth))
	data.HandleFunc("/users", usersHandler.List).Methods(http.MethodGet)

	r.HandleFunc("/health", healthHandler.Health).Methods(http.MethodGet)
	if d.Metrics != nil {
		r.Handle("/metrics", d.Metrics.Handler()).Methods(http.MethodGet)
	}

	var h http.Handler = r
	h = middleware.CORSMiddleware(d.AllowedOrigins)(h)
	h = middleware.MetricsMiddleware(d.Metrics, r)(h)
	h = middleware.LoggingWithSkip(logger.Named("http"), []string{"/health", "/metrics"})(h)
	h = middleware.RequestIDMiddleware(h)
	h = middleware.RecoveryMiddleware(logger.Named("http"))(h)

	return h
}
