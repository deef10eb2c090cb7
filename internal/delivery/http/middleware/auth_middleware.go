package middleware

import (
	"context"
	"net/http"

	"ads-dental-admin/internal/domain/entity"
	"ads-dental-admin/internal/usecase"
	"ads-dental-admin/pkg/response"
)

type contextKey string

const (
	SessionKey   contextKey = "session"
	RequestIDKey contextKey = "request_id"
)

// AuthMiddleware admits requests while the dashboard holds a session. The
// token itself is only ever checked by the backend.
type AuthMiddleware struct {
	session usecase.SessionUsecase
}

func NewAuthMiddleware(session usecase.SessionUsecase) *AuthMiddleware {
	return &AuthMiddleware{
		session: session,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := m.session.Current()
		if !ok {
			response.Unauthorized(w, "Not signed in")
			return
		}

		ctx := context.WithValue(r.Context(), SessionKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSessionFromContext extracts the session copy set by Authenticate
func GetSessionFromContext(ctx context.Context) (*entity.Session, bool) {
	session, ok := ctx.Value(SessionKey).(*entity.Session)
	return session, ok
}

// GetRequestIDFromContext extracts the request id set by RequestLogger
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDKey).(string)
	return id, ok
}
