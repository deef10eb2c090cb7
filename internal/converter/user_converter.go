package converter

import (
	"ads-dental-admin/internal/delivery/dto"
	"ads-dental-admin/internal/domain/entity"
)

// SessionToResponse converts a Session to SessionResponse DTO, exposing the
// capability flags but never the token
func SessionToResponse(session *entity.Session) *dto.SessionResponse {
	if session == nil {
		return nil
	}

	roles := []string(session.User.Roles)
	if roles == nil {
		roles = []string{}
	}

	return &dto.SessionResponse{
		User: dto.UserResponse{
			Username: session.User.Username,
			Email:    session.User.Email,
			Roles:    roles,
		},
		IsAdmin:   session.User.IsAdmin(),
		IsDentist: session.User.IsDentist(),
		IsPatient: session.User.IsPatient(),
		ExpiresAt: session.ExpiresAt,
	}
}
