package usecase

import (
	"ads-dental-admin/internal/domain/entity"
)

// Page access by role. Dashboard and Appointments are open to every signed-in user.
var (
	PatientsPageRoles  = []string{entity.RoleAdmin}
	DentistsPageRoles  = []string{entity.RoleAdmin}
	AddressesPageRoles = []string{entity.RoleAdmin}
	SurgeriesPageRoles = []string{entity.RoleAdmin, entity.RoleDentist}
)

// currentSession returns the session when its user holds one of roles.
// No roles means any signed-in user.
func currentSession(session SessionUsecase, roles ...string) (*entity.Session, error) {
	s, ok := session.Current()
	if !ok || s.Token == "" {
		return nil, ErrNoSession
	}
	if len(roles) > 0 && !s.User.Roles.HasAny(roles...) {
		return nil, ErrForbidden
	}
	return s, nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
