package usecase

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"ads-dental-admin/internal/converter"
	"ads-dental-admin/internal/delivery/dto"
	"ads-dental-admin/internal/domain/entity"
	"ads-dental-admin/internal/domain/repository"
	"ads-dental-admin/internal/service"

	"github.com/sirupsen/logrus"
)

// AppointmentUsecase backs the appointments listing and its row actions.
type AppointmentUsecase interface {
	GetAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	// FindAppointment looks in the last fetched list, refetching once on a miss.
	FindAppointment(ctx context.Context, id int) (*entity.Appointment, error)
	MarkCompleted(ctx context.Context, id int) (*dto.AppointmentListResponse, error)
	Cancel(ctx context.Context, id int) (*dto.AppointmentListResponse, error)
	DeleteAppointment(ctx context.Context, id int, confirmed bool) (*dto.AppointmentListResponse, error)
	// Refresh refetches the list; failures are only logged.
	Refresh(ctx context.Context)
	// Forget drops the cached list.
	Forget()
}

type appointmentUsecase struct {
	log             *logrus.Logger
	session         SessionUsecase
	appointmentRepo repository.AppointmentRepository
	audit           service.AuditService

	// actionMu allows one row action in flight at a time.
	actionMu sync.Mutex

	mu           sync.RWMutex
	appointments []entity.Appointment
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	session SessionUsecase,
	appointmentRepo repository.AppointmentRepository,
	audit service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		session:         session,
		appointmentRepo: appointmentRepo,
		audit:           audit,
	}
}

func (u *appointmentUsecase) GetAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	s, err := currentSession(u.session)
	if err != nil {
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindAll(ctx, s.Token)
	if err != nil {
		u.log.Warnf("Failed to find all appointments: %+v", err)
		return nil, err
	}

	u.mu.Lock()
	u.appointments = appointments
	u.mu.Unlock()

	return converter.AppointmentsToResponse(appointments), nil
}

func (u *appointmentUsecase) FindAppointment(ctx context.Context, id int) (*entity.Appointment, error) {
	if appointment, ok := u.cached(id); ok {
		return appointment, nil
	}
	if _, err := u.GetAppointments(ctx); err != nil {
		return nil, err
	}
	if appointment, ok := u.cached(id); ok {
		return appointment, nil
	}
	return nil, ErrAppointmentNotFound
}

// MarkCompleted sends a status-only update. Dentists only; the appointment
// must still be BOOKED.
func (u *appointmentUsecase) MarkCompleted(ctx context.Context, id int) (*dto.AppointmentListResponse, error) {
	return u.transition(ctx, id, entity.AppointmentStatusCompleted)
}

// Cancel sends a status-only update. Dentists only; the appointment must
// still be BOOKED.
func (u *appointmentUsecase) Cancel(ctx context.Context, id int) (*dto.AppointmentListResponse, error) {
	return u.transition(ctx, id, entity.AppointmentStatusCancelled)
}

// DeleteAppointment removes an appointment after confirmation. Admins may
// delete any appointment, patients only those still BOOKED. Ownership is left
// to the backend.
func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, id int, confirmed bool) (*dto.AppointmentListResponse, error) {
	s, err := currentSession(u.session, entity.RoleAdmin, entity.RolePatient)
	if err != nil {
		return nil, err
	}
	if !confirmed {
		return nil, ErrDeleteNotConfirmed
	}

	appointment, err := u.FindAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.User.IsAdmin() && !appointment.IsBooked() {
		return nil, ErrForbidden
	}

	if !u.actionMu.TryLock() {
		return nil, ErrActionInFlight
	}
	defer u.actionMu.Unlock()

	if err := u.appointmentRepo.Delete(ctx, s.Token, id); err != nil {
		u.log.Warnf("Failed to delete appointment %d: %+v", id, err)
		return nil, err
	}

	u.log.Infof("Appointment deleted: id=%d", id)
	u.audit.LogDelete(ctx, s.User.Username, "appointment", strconv.Itoa(id))

	return u.refresh(ctx), nil
}

func (u *appointmentUsecase) Forget() {
	u.mu.Lock()
	u.appointments = nil
	u.mu.Unlock()
}

func (u *appointmentUsecase) Refresh(ctx context.Context) {
	u.refresh(ctx)
}

func (u *appointmentUsecase) transition(ctx context.Context, id int, to entity.AppointmentStatus) (*dto.AppointmentListResponse, error) {
	s, err := currentSession(u.session, entity.RoleDentist)
	if err != nil {
		return nil, err
	}

	appointment, err := u.FindAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := entity.CanTransition(appointment.Status, to); err != nil {
		if errors.Is(err, entity.ErrInvalidStatusTransition) {
			return nil, ErrTransitionNotAllowed
		}
		return nil, err
	}

	if !u.actionMu.TryLock() {
		return nil, ErrActionInFlight
	}
	defer u.actionMu.Unlock()

	patch := entity.StatusPatch(to)
	if _, err := u.appointmentRepo.Update(ctx, s.Token, id, patch); err != nil {
		u.log.Warnf("Failed to set appointment %d to %s: %+v", id, to, err)
		return nil, err
	}

	u.log.Infof("Appointment status changed: id=%d, status=%s", id, to)
	u.audit.LogUpdate(ctx, s.User.Username, "appointment", strconv.Itoa(id), patch)

	return u.refresh(ctx), nil
}

func (u *appointmentUsecase) refresh(ctx context.Context) *dto.AppointmentListResponse {
	list, err := u.GetAppointments(ctx)
	if err != nil {
		u.log.Warnf("Failed to refresh appointments: %+v", err)
		return nil
	}
	return list
}

func (u *appointmentUsecase) cached(id int) (*entity.Appointment, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	for i := range u.appointments {
		if u.appointments[i].ID == id {
			appointment := u.appointments[i]
			return &appointment, true
		}
	}
	return nil, false
}
