package middleware

import (
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// AdminChecker decides whether an access token belongs to an administrator.
type AdminChecker interface {
	IsAdmin(token string) bool
}

// accessDeniedBody matches the JSON envelope used by the data endpoints.
const accessDeniedBody = `{"success":false,"error":"Access denied"}`

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header.
func BearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

// AdminMiddleware only lets requests through whose bearer token carries the
// Admin role. Everything else gets 403.
func AdminMiddleware(logger *zap.Logger, checker AdminChecker) func(http.Handler) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := BearerToken(r)
			if !ok {
				logger.Warn("Missing or malformed Authorization header",
					zap.String("request_id", RequestIDFromContext(r.Context())),
					zap.String("path", r.URL.Path))
				denyAccess(w)
				return
			}

			if !checker.IsAdmin(token) {
				logger.Warn("Admin access denied",
					zap.String("request_id", RequestIDFromContext(r.Context())),
					zap.String("path", r.URL.Path))
				denyAccess(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func denyAccess(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	_, _ = w.Write([]byte(accessDeniedBody))
}
