package repository

import (
	"context"

	"ads-dental-admin/internal/domain/entity"
)

type DentistRepository interface {
	FindAll(ctx context.Context, token string) ([]entity.Dentist, error)
}
