package usecase

import (
	"context"
	"testing"
	"time"

	"ads-dental-admin/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededAppointments() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: []entity.Appointment{
		{ID: 1, Status: entity.AppointmentStatusBooked},
		{ID: 2, Status: entity.AppointmentStatusCompleted},
		{ID: 3, Status: entity.AppointmentStatusCancelled},
	}}
}

func TestMarkCompletedSendsStatusOnlyPatch(t *testing.T) {
	repo := seededAppointments()
	uc := NewAppointmentUsecase(newTestLogger(), signedIn(entity.RoleDentist), repo, newTestAudit())
	ctx := context.Background()

	_, err := uc.GetAppointments(ctx)
	require.NoError(t, err)

	list, err := uc.MarkCompleted(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, list)
	assert.Equal(t, 3, list.Total)

	require.Len(t, repo.updates, 1)
	call := repo.updates[0]
	assert.Equal(t, 1, call.id)
	assert.Equal(t, entity.StatusPatch(entity.AppointmentStatusCompleted), call.patch)
	// initial fetch plus one refetch
	assert.Equal(t, 2, repo.finds)
}

func TestCancelSendsStatusOnlyPatch(t *testing.T) {
	repo := seededAppointments()
	uc := NewAppointmentUsecase(newTestLogger(), signedIn(entity.RoleDentist), repo, newTestAudit())

	_, err := uc.Cancel(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, repo.updates, 1)
	assert.Equal(t, entity.AppointmentStatusCancelled, *repo.updates[0].patch.Status)
	assert.Nil(t, repo.updates[0].patch.PatientID)
}

func TestTerminalTransitionsNeverReachBackend(t *testing.T) {
	repo := seededAppointments()
	uc := NewAppointmentUsecase(newTestLogger(), signedIn(entity.RoleDentist), repo, newTestAudit())
	ctx := context.Background()

	for _, id := range []int{2, 3} {
		_, err := uc.MarkCompleted(ctx, id)
		assert.ErrorIs(t, err, ErrTransitionNotAllowed)
		_, err = uc.Cancel(ctx, id)
		assert.ErrorIs(t, err, ErrTransitionNotAllowed)
	}
	assert.Zero(t, repo.requests())
}

func TestStatusActionsRequireDentist(t *testing.T) {
	repo := seededAppointments()
	uc := NewAppointmentUsecase(newTestLogger(), signedIn(entity.RoleAdmin, entity.RolePatient), repo, newTestAudit())

	_, err := uc.MarkCompleted(context.Background(), 1)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Zero(t, repo.requests())
}

func TestStatusActionOnUnknownAppointment(t *testing.T) {
	repo := seededAppointments()
	uc := NewAppointmentUsecase(newTestLogger(), signedIn(entity.RoleDentist), repo, newTestAudit())

	_, err := uc.Cancel(context.Background(), 42)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	assert.Zero(t, repo.requests())
}

func TestOneStatusActionInFlight(t *testing.T) {
	repo := seededAppointments()
	repo.appointments = append(repo.appointments, entity.Appointment{ID: 4, Status: entity.AppointmentStatusBooked})
	repo.block = make(chan struct{})
	uc := NewAppointmentUsecase(newTestLogger(), signedIn(entity.RoleDentist), repo, newTestAudit())
	ctx := context.Background()

	_, err := uc.GetAppointments(ctx)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := uc.MarkCompleted(ctx, 1)
		done <- err
	}()

	require.Eventually(t, func() bool {
		return repo.waiting.Load() == 1
	}, time.Second, 5*time.Millisecond)

	_, err = uc.Cancel(ctx, 4)
	assert.ErrorIs(t, err, ErrActionInFlight)

	close(repo.block)
	require.NoError(t, <-done)
	assert.Len(t, repo.updates, 1)
}

func TestDeleteAppointmentRequiresConfirmation(t *testing.T) {
	repo := seededAppointments()
	uc := NewAppointmentUsecase(newTestLogger(), signedIn(entity.RoleAdmin), repo, newTestAudit())

	_, err := uc.DeleteAppointment(context.Background(), 1, false)
	assert.ErrorIs(t, err, ErrDeleteNotConfirmed)
	assert.Zero(t, repo.requests())

	_, err = uc.DeleteAppointment(context.Background(), 2, true)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, repo.deleted)
}

func TestPatientDeletesOnlyBookedAppointments(t *testing.T) {
	repo := seededAppointments()
	uc := NewAppointmentUsecase(newTestLogger(), signedIn(entity.RolePatient), repo, newTestAudit())
	ctx := context.Background()

	_, err := uc.DeleteAppointment(ctx, 2, true)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = uc.DeleteAppointment(ctx, 1, true)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, repo.deleted)
}

func TestDentistCannotDeleteAppointments(t *testing.T) {
	repo := seededAppointments()
	uc := NewAppointmentUsecase(newTestLogger(), signedIn(entity.RoleDentist), repo, newTestAudit())

	_, err := uc.DeleteAppointment(context.Background(), 1, true)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Zero(t, repo.requests())
}

func TestGetAppointmentsWithoutSession(t *testing.T) {
	uc := NewAppointmentUsecase(newTestLogger(), &stubSession{}, seededAppointments(), newTestAudit())

	_, err := uc.GetAppointments(context.Background())
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestForgetDropsCachedAppointments(t *testing.T) {
	repo := seededAppointments()
	uc := NewAppointmentUsecase(newTestLogger(), signedIn(entity.RoleAdmin), repo, newTestAudit())
	ctx := context.Background()

	_, err := uc.GetAppointments(ctx)
	require.NoError(t, err)
	_, err = uc.FindAppointment(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.finds)

	uc.Forget()
	_, err = uc.FindAppointment(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.finds)
}
