package usecase

import (
	"context"
	"strconv"
	"strings"

	"ads-dental-admin/internal/converter"
	"ads-dental-admin/internal/delivery/dto"
	"ads-dental-admin/internal/domain/entity"
	"ads-dental-admin/internal/domain/repository"
	"ads-dental-admin/internal/service"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
)

type PatientUsecase interface {
	GetPatients(ctx context.Context, search string) (*dto.PatientListResponse, error)
	CreatePatient(ctx context.Context, req *dto.PatientRequest) (*dto.PatientListResponse, error)
	UpdatePatient(ctx context.Context, patientNo int, req *dto.PatientRequest) (*dto.PatientListResponse, error)
	DeletePatient(ctx context.Context, patientNo int, confirmed bool) (*dto.PatientListResponse, error)
}

type patientUsecase struct {
	log         *logrus.Logger
	session     SessionUsecase
	patientRepo repository.PatientRepository
	audit       service.AuditService
}

func NewPatientUsecase(
	log *logrus.Logger,
	session SessionUsecase,
	patientRepo repository.PatientRepository,
	audit service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		log:         log,
		session:     session,
		patientRepo: patientRepo,
		audit:       audit,
	}
}

// GetPatients fetches the full list and filters it locally by search.
func (u *patientUsecase) GetPatients(ctx context.Context, search string) (*dto.PatientListResponse, error) {
	s, err := currentSession(u.session, PatientsPageRoles...)
	if err != nil {
		return nil, err
	}

	patients, err := u.patientRepo.FindAll(ctx, s.Token)
	if err != nil {
		u.log.Warnf("Failed to find all patients: %+v", err)
		return nil, err
	}

	filtered := FilterPatients(patients, search)
	return &dto.PatientListResponse{
		Patients: nonNil(filtered),
		Total:    len(filtered),
		Search:   search,
	}, nil
}

func (u *patientUsecase) CreatePatient(ctx context.Context, req *dto.PatientRequest) (*dto.PatientListResponse, error) {
	s, err := currentSession(u.session, PatientsPageRoles...)
	if err != nil {
		return nil, err
	}

	created, err := u.patientRepo.Create(ctx, s.Token, converter.PatientRequestToEntity(req))
	if err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	u.log.Infof("Patient created: patient_no=%d", created.PatientNo)
	u.audit.LogCreate(ctx, s.User.Username, "patient", strconv.Itoa(created.PatientNo), req)

	return u.refresh(ctx), nil
}

// UpdatePatient replaces the whole record; patient_no is immutable.
func (u *patientUsecase) UpdatePatient(ctx context.Context, patientNo int, req *dto.PatientRequest) (*dto.PatientListResponse, error) {
	s, err := currentSession(u.session, PatientsPageRoles...)
	if err != nil {
		return nil, err
	}

	patient := converter.PatientRequestToEntity(req)
	patient.PatientNo = patientNo
	if _, err := u.patientRepo.Update(ctx, s.Token, patientNo, patient); err != nil {
		u.log.Warnf("Failed to update patient %d: %+v", patientNo, err)
		return nil, err
	}

	u.log.Infof("Patient updated: patient_no=%d", patientNo)
	u.audit.LogUpdate(ctx, s.User.Username, "patient", strconv.Itoa(patientNo), req)

	return u.refresh(ctx), nil
}

func (u *patientUsecase) DeletePatient(ctx context.Context, patientNo int, confirmed bool) (*dto.PatientListResponse, error) {
	s, err := currentSession(u.session, PatientsPageRoles...)
	if err != nil {
		return nil, err
	}
	if !confirmed {
		return nil, ErrDeleteNotConfirmed
	}

	if err := u.patientRepo.Delete(ctx, s.Token, patientNo); err != nil {
		u.log.Warnf("Failed to delete patient %d: %+v", patientNo, err)
		return nil, err
	}

	u.log.Infof("Patient deleted: patient_no=%d", patientNo)
	u.audit.LogDelete(ctx, s.User.Username, "patient", strconv.Itoa(patientNo))

	return u.refresh(ctx), nil
}

// refresh refetches after a mutation. The mutation already succeeded, so a
// failed refetch only leaves the caller without a list.
func (u *patientUsecase) refresh(ctx context.Context) *dto.PatientListResponse {
	list, err := u.GetPatients(ctx, "")
	if err != nil {
		u.log.Warnf("Failed to refresh patients after mutation: %+v", err)
		return nil
	}
	return list
}

// FilterPatients keeps patients whose "first last" name or email contains
// search, ignoring case. The term is matched as typed, spaces included; an
// empty search keeps everything.
func FilterPatients(patients []entity.Patient, search string) []entity.Patient {
	if search == "" {
		return patients
	}

	fold := cases.Fold()
	needle := fold.String(search)

	matched := make([]entity.Patient, 0, len(patients))
	for _, p := range patients {
		if strings.Contains(fold.String(p.FullName()), needle) ||
			strings.Contains(fold.String(p.Email), needle) {
			matched = append(matched, p)
		}
	}
	return matched
}
