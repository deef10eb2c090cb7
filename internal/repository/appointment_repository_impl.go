package repository

import (
	"context"
	"fmt"
	"net/http"

	"ads-dental-admin/internal/domain/entity"
	domainRepo "ads-dental-admin/internal/domain/repository"
	"ads-dental-admin/internal/infrastructure/backend"
)

type appointmentRepository struct {
	client *backend.Client
}

func NewAppointmentRepository(client *backend.Client) domainRepo.AppointmentRepository {
	return &appointmentRepository{client: client}
}

func (r *appointmentRepository) FindAll(ctx context.Context, token string) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.client.Do(ctx, backend.Request{
		Operation:  backend.OpList,
		EntityKind: backend.KindAppointment,
		Method:     http.MethodGet,
		Path:       "/appointments",
		Token:      token,
	}, &appointments)
	if err != nil {
		return nil, err
	}
	if err := requireIdentities(backend.KindAppointment, len(appointments), func(i int) int { return appointments[i].ID }); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Create(ctx context.Context, token string, appointment *entity.Appointment) (*entity.Appointment, error) {
	var created entity.Appointment
	err := r.client.Do(ctx, backend.Request{
		Operation:  backend.OpCreate,
		EntityKind: backend.KindAppointment,
		Method:     http.MethodPost,
		Path:       "/appointments",
		Token:      token,
		Body:       appointment,
	}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *appointmentRepository) Update(ctx context.Context, token string, id int, patch entity.AppointmentPatch) (*entity.Appointment, error) {
	var updated entity.Appointment
	err := r.client.Do(ctx, backend.Request{
		Operation:  backend.OpUpdate,
		EntityKind: backend.KindAppointment,
		Method:     http.MethodPut,
		Path:       fmt.Sprintf("/appointments/%d", id),
		Token:      token,
		Body:       patch,
	}, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *appointmentRepository) Delete(ctx context.Context, token string, id int) error {
	return r.client.Do(ctx, backend.Request{
		Operation:  backend.OpDelete,
		EntityKind: backend.KindAppointment,
		Method:     http.MethodDelete,
		Path:       fmt.Sprintf("/appointments/%d", id),
		Token:      token,
	}, nil)
}
