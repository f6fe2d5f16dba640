package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"shopfront/internal/model"

	"github.com/rs/zerolog"
)

type contextKey string

// userKey holds the authenticated *model.User in the request context.
const userKey contextKey = "user"

// TokenVerifier resolves a bearer token to its user.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*model.User, error)
}

// CORS adds CORS headers to the response.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Accept-Language")

		// Handle preflight requests
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireAuth validates the bearer token from the Authorization header
// and puts the resolved user in the request context.
func RequireAuth(verifier TokenVerifier, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				logger.Warn().Str("path", r.URL.Path).Msg("missing bearer token")
				unauthorised(w, "Missing bearer token")
				return
			}

			user, err := verifier.Verify(r.Context(), token)
			if err != nil {
				logger.Warn().Err(err).Str("path", r.URL.Path).Msg("token rejected")
				unauthorised(w, "Invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey, user)))
		})
	}
}

// RequireAdmin rejects requests whose authenticated user is not an
// admin. It must run after RequireAuth.
func RequireAdmin(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := UserFrom(r.Context())
			if user == nil || user.Role != model.RoleAdmin {
				logger.Warn().Str("path", r.URL.Path).Msg("admin access denied")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				w.Write([]byte(`{"error": {"code": "FORBIDDEN", "message": "Admin access required"}}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// UserFrom returns the authenticated user from the request context, or
// nil outside an authenticated route.
func UserFrom(ctx context.Context) *model.User {
	user, _ := ctx.Value(userKey).(*model.User)
	return user
}

// WithUser returns a context carrying the given user. Used by tests and
// by handlers that call authenticated code paths directly.
func WithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// Logging logs HTTP requests with timing information.
func Logging(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Create a response writer wrapper to capture status code
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			duration := time.Since(start)
			logger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", rw.statusCode).
				Dur("duration", duration).
				Str("remote_addr", r.RemoteAddr).
				Msg("http request")
		})
	}
}

// Recovery recovers from panics and returns a 500 error.
func Recovery(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error().
						Interface("panic", err).
						Str("method", r.Method).
						Str("path", r.URL.Path).
						Msg("panic recovered")

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"error": {"code": "INTERNAL_ERROR", "message": "Internal server error"}}`))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// bearerToken extracts the token from an "Authorization: Bearer x" header.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func unauthorised(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error": {"code": "UNAUTHORIZED", "message": "` + message + `"}}`))
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

// WriteHeader captures the status code.
func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
