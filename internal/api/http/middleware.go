package http

import (
	"net/http"
	"strings"
	"time"

	"carrental-backend/internal/logger"
	"carrental-backend/internal/security"

	"github.com/google/uuid"
)

// RequestLogging assigns every request a request id and logs method, path,
// and duration once the handler returns.
func RequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		next.ServeHTTP(w, r.WithContext(withRequestID(r.Context(), requestID)))
		logger.Info("Request handled",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// BearerAuth rejects requests without a valid bearer token and stores the
// token claims in the request context.
func BearerAuth(tokens security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				writeDetail(w, http.StatusUnauthorized, "Not authenticated")
				return
			}
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found {
				writeDetail(w, http.StatusUnauthorized, "Invalid authorization header")
				return
			}

			claims, err := tokens.ValidateToken(token)
			if err != nil {
				writeDetail(w, http.StatusUnauthorized, "Could not validate credentials")
				return
			}

			next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
		})
	}
}
