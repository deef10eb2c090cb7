package repository

import (
	"context"

	"ads-dental-admin/internal/domain/entity"
)

type AddressRepository interface {
	FindAll(ctx context.Context, token string) ([]entity.Address, error)
}
