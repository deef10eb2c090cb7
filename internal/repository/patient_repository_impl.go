package repository

import (
	"context"
	"fmt"
	"net/http"

	"ads-dental-admin/internal/domain/entity"
	domainRepo "ads-dental-admin/internal/domain/repository"
	"ads-dental-admin/internal/infrastructure/backend"
)

type patientRepository struct {
	client *backend.Client
}

func NewPatientRepository(client *backend.Client) domainRepo.PatientRepository {
	return &patientRepository{client: client}
}

func (r *patientRepository) FindAll(ctx context.Context, token string) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := r.client.Do(ctx, backend.Request{
		Operation:  backend.OpList,
		EntityKind: backend.KindPatient,
		Method:     http.MethodGet,
		Path:       "/patients",
		Token:      token,
	}, &patients)
	if err != nil {
		return nil, err
	}
	if err := requireIdentities(backend.KindPatient, len(patients), func(i int) int { return patients[i].PatientNo }); err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) Create(ctx context.Context, token string, patient *entity.Patient) (*entity.Patient, error) {
	var created entity.Patient
	err := r.client.Do(ctx, backend.Request{
		Operation:  backend.OpCreate,
		EntityKind: backend.KindPatient,
		Method:     http.MethodPost,
		Path:       "/patients",
		Token:      token,
		Body:       patient,
	}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces the whole record; patientNo is the identity and is not taken from the body.
func (r *patientRepository) Update(ctx context.Context, token string, patientNo int, patient *entity.Patient) (*entity.Patient, error) {
	var updated entity.Patient
	err := r.client.Do(ctx, backend.Request{
		Operation:  backend.OpUpdate,
		EntityKind: backend.KindPatient,
		Method:     http.MethodPut,
		Path:       fmt.Sprintf("/patients/%d", patientNo),
		Token:      token,
		Body:       patient,
	}, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *patientRepository) Delete(ctx context.Context, token string, patientNo int) error {
	return r.client.Do(ctx, backend.Request{
		Operation:  backend.OpDelete,
		EntityKind: backend.KindPatient,
		Method:     http.MethodDelete,
		Path:       fmt.Sprintf("/patients/%d", patientNo),
		Token:      token,
	}, nil)
}
