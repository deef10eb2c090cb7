package repository

import (
	"context"
	"net/http"

	"ads-dental-admin/internal/domain/entity"
	domainRepo "ads-dental-admin/internal/domain/repository"
	"ads-dental-admin/internal/infrastructure/backend"
)

type dentistRepository struct {
	client *backend.Client
}

func NewDentistRepository(client *backend.Client) domainRepo.DentistRepository {
	return &dentistRepository{client: client}
}

func (r *dentistRepository) FindAll(ctx context.Context, token string) ([]entity.Dentist, error) {
	var dentists []entity.Dentist
	err := r.client.Do(ctx, backend.Request{
		Operation:  backend.OpList,
		EntityKind: backend.KindDentist,
		Method:     http.MethodGet,
		Path:       "/dentists",
		Token:      token,
	}, &dentists)
	if err != nil {
		return nil, err
	}
	if err := requireIdentities(backend.KindDentist, len(dentists), func(i int) int { return dentists[i].ID }); err != nil {
		return nil, err
	}
	return dentists, nil
}
