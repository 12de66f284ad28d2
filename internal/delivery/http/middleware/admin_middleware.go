package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"evercare-appointment-api/pkg/response"
)

// AdminMiddleware guards the staff read endpoints. Admin reads return
// patient contact details, so they are never served without a token.
type AdminMiddleware struct {
	apiToken string
}

func NewAdminMiddleware(apiToken string) *AdminMiddleware {
	return &AdminMiddleware{apiToken: apiToken}
}

func (m *AdminMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.apiToken == "" {
			// Refuse to expose patient data on a misconfigured deployment
			response.Unauthorized(w, "Admin access is not configured")
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		if subtle.ConstantTimeCompare([]byte(parts[1]), []byte(m.apiToken)) != 1 {
			response.Unauthorized(w, "Invalid admin token")
			return
		}

		next.ServeHTTP(w, r)
	})
}
