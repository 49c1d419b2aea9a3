package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/PrajwalVN/parking-booking/internal/service"
)

// TokenFromRequest pulls the admin session token out of the request.
// Both the X-Admin-Token header and a Bearer Authorization header are
// accepted.
func TokenFromRequest(r *http.Request) string {
	if t := r.Header.Get("X-Admin-Token"); t != "" {
		return t
	}
	return strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
}

// AdminAuthMiddleware rejects requests that do not carry a valid admin
// session token.
func AdminAuthMiddleware(authSvc service.AdminAuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := TokenFromRequest(r)
			if token == "" || authSvc.Validate(token) != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
