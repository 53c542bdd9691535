// filepath: internal/services/auth/middleware.go
package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"recipehub/internal/logging"
)

// writeError sends a JSON error response.
func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// Middleware provides authentication middleware.
type Middleware struct {
	Token TokenService
}

// NewMiddleware creates a new instance of Middleware.
func NewMiddleware(token TokenService) *Middleware {
	return &Middleware{Token: token}
}

// AuthMiddleware checks for a valid JWT Bearer token and puts the
// authenticated username into the request context under "user". All
// identity downstream derives from that context value, never from request
// payloads.
func (m *Middleware) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			w.Header().Set("WWW-Authenticate", `Bearer realm="restricted"`)
			writeError(w, http.StatusUnauthorized, "Authorization header required")
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			writeError(w, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		user, err := m.Token.ValidateAccessToken(tokenString)
		if err != nil {
			logging.Log.Warnf("AuthMiddleware: Invalid Bearer token: %v", err)
			if strings.Contains(err.Error(), "expired") {
				writeError(w, http.StatusUnauthorized, "Token expired")
			} else {
				writeError(w, http.StatusUnauthorized, "Invalid token")
			}
			return
		}

		ctx := context.WithValue(r.Context(), "user", user.Username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
