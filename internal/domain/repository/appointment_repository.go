package repository

import (
	"context"

	"ads-dental-admin/internal/domain/entity"
)

type AppointmentRepository interface {
	FindAll(ctx context.Context, token string) ([]entity.Appointment, error)
	Create(ctx context.Context, token string, appointment *entity.Appointment) (*entity.Appointment, error)
	// Update sends only the fields set in patch.
	Update(ctx context.Context, token string, id int, patch entity.AppointmentPatch) (*entity.Appointment, error)
	Delete(ctx context.Context, token string, id int) error
}
