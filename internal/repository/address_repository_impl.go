package repository

import (
	"context"
	"net/http"

	"ads-dental-admin/internal/domain/entity"
	domainRepo "ads-dental-admin/internal/domain/repository"
	"ads-dental-admin/internal/infrastructure/backend"
)

type addressRepository struct {
	client *backend.Client
}

func NewAddressRepository(client *backend.Client) domainRepo.AddressRepository {
	return &addressRepository{client: client}
}

func (r *addressRepository) FindAll(ctx context.Context, token string) ([]entity.Address, error) {
	var addresses []entity.Address
	err := r.client.Do(ctx, backend.Request{
		Operation:  backend.OpList,
		EntityKind: backend.KindAddress,
		Method:     http.MethodGet,
		Path:       "/addresses",
		Token:      token,
	}, &addresses)
	if err != nil {
		return nil, err
	}
	if err := requireIdentities(backend.KindAddress, len(addresses), func(i int) int { return addresses[i].ID }); err != nil {
		return nil, err
	}
	return addresses, nil
}
