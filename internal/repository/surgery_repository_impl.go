package repository

import (
	"context"
	"net/http"

	"ads-dental-admin/internal/domain/entity"
	domainRepo "ads-dental-admin/internal/domain/repository"
	"ads-dental-admin/internal/infrastructure/backend"
)

type surgeryRepository struct {
	client *backend.Client
}

func NewSurgeryRepository(client *backend.Client) domainRepo.SurgeryRepository {
	return &surgeryRepository{client: client}
}

func (r *surgeryRepository) FindAll(ctx context.Context, token string) ([]entity.Surgery, error) {
	var surgeries []entity.Surgery
	err := r.client.Do(ctx, backend.Request{
		Operation:  backend.OpList,
		EntityKind: backend.KindSurgery,
		Method:     http.MethodGet,
		Path:       "/surgeries",
		Token:      token,
	}, &surgeries)
	if err != nil {
		return nil, err
	}
	if err := requireIdentities(backend.KindSurgery, len(surgeries), func(i int) int { return surgeries[i].SurgeryNo }); err != nil {
		return nil, err
	}
	return surgeries, nil
}
