package middleware

import (
	"net/http"

	"ads-dental-admin/pkg/response"
)

// RequireRole creates a middleware that checks if the user holds any of the roles.
// The session is read from context (set by AuthMiddleware).
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := GetSessionFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Not signed in")
				return
			}

			if !session.User.Roles.HasAny(roles...) {
				response.Forbidden(w, "You don't have permission to access this page")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
