package repository

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"ads-dental-admin/internal/domain/entity"
	domainRepo "ads-dental-admin/internal/domain/repository"
	"ads-dental-admin/internal/infrastructure/backend"
)

// loginResponse accepts both the flat and the nested user shape the backend has served.
type loginResponse struct {
	AccessToken string         `json:"access_token"`
	Roles       entity.RoleSet `json:"roles"`
	User        *struct {
		Email string         `json:"email"`
		Roles entity.RoleSet `json:"roles"`
	} `json:"user"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type authRepository struct {
	client *backend.Client
}

func NewAuthRepository(client *backend.Client) domainRepo.AuthRepository {
	return &authRepository{client: client}
}

func (r *authRepository) Login(ctx context.Context, username, password string) (*domainRepo.LoginResult, error) {
	var resp loginResponse
	err := r.client.Do(ctx, backend.Request{
		Operation:  backend.OpLogin,
		EntityKind: backend.KindAccount,
		Method:     http.MethodPost,
		Path:       "/auth/login",
		Form:       url.Values{"username": {username}, "password": {password}},
	}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.AccessToken == "" {
		return nil, &backend.RequestError{
			Operation:  backend.OpLogin,
			EntityKind: backend.KindAccount,
			Err:        fmt.Errorf("%w: access_token missing", ErrMalformedResponse),
		}
	}

	result := &domainRepo.LoginResult{AccessToken: resp.AccessToken, Roles: resp.Roles}
	if resp.User != nil {
		result.Email = resp.User.Email
		if len(result.Roles) == 0 {
			result.Roles = resp.User.Roles
		}
	}
	return result, nil
}

func (r *authRepository) Register(ctx context.Context, username, email, password, role string) error {
	return r.client.Do(ctx, backend.Request{
		Operation:  backend.OpRegister,
		EntityKind: backend.KindAccount,
		Method:     http.MethodPost,
		Path:       "/auth/register",
		Body: registerRequest{
			Username: username,
			Email:    email,
			Password: password,
			Role:     role,
		},
	}, nil)
}
