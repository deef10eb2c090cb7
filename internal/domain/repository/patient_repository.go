package repository

import (
	"context"

	"ads-dental-admin/internal/domain/entity"
)

type PatientRepository interface {
	FindAll(ctx context.Context, token string) ([]entity.Patient, error)
	Create(ctx context.Context, token string, patient *entity.Patient) (*entity.Patient, error)
	Update(ctx context.Context, token string, patientNo int, patient *entity.Patient) (*entity.Patient, error)
	Delete(ctx context.Context, token string, patientNo int) error
}
