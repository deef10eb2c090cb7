package repository

import (
	"context"

	"ads-dental-admin/internal/domain/entity"
)

type SurgeryRepository interface {
	FindAll(ctx context.Context, token string) ([]entity.Surgery, error)
}
