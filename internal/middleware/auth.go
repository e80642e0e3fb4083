// internal/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/emateapp/emate/internal/auth"
	"github.com/emateapp/emate/internal/domain"
	"github.com/google/uuid"
)

type UserContextKey string

var UserIDKey UserContextKey = "emate_user_id"

// AuthMiddleware resolves the request's bearer token (when present) to an
// internal user ID via the identity resolver and stores it in the context.
// Whether a missing or invalid token is fatal depends on the resolver's mode.
func AuthMiddleware(resolver *auth.IdentityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)

			userID, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				switch {
				case errors.Is(err, domain.ErrServiceUnavailable):
					respondWithError(w, http.StatusServiceUnavailable, "Identity provider unavailable")
				case errors.Is(err, domain.ErrUnauthenticated):
					respondWithError(w, http.StatusUnauthorized, "Invalid or missing token")
				default:
					respondWithError(w, http.StatusInternalServerError, "Internal server error")
				}
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFrom extracts the resolved user ID placed in the context by
// AuthMiddleware.
func UserIDFrom(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return id, ok
}

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// respondWithError sends a JSON error response
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
