package repository

import (
	"context"

	"ads-dental-admin/internal/domain/entity"
)

// LoginResult is what the backend hands back for a successful login.
// Roles and Email are empty when the backend omits them.
type LoginResult struct {
	AccessToken string
	Email       string
	Roles       entity.RoleSet
}

type AuthRepository interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Register(ctx context.Context, username, email, password, role string) error
}
