package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to AppointmentStatus
		allowed  bool
	}{
		{AppointmentStatusBooked, AppointmentStatusCompleted, true},
		{AppointmentStatusBooked, AppointmentStatusCancelled, true},
		{AppointmentStatusBooked, AppointmentStatusBooked, true},
		{AppointmentStatusCompleted, AppointmentStatusCancelled, false},
		{AppointmentStatusCompleted, AppointmentStatusBooked, false},
		{AppointmentStatusCancelled, AppointmentStatusCompleted, false},
		{AppointmentStatusCancelled, AppointmentStatusBooked, false},
		{AppointmentStatusBooked, AppointmentStatus("PENDING"), false},
		{AppointmentStatus(""), AppointmentStatusBooked, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			err := CanTransition(tt.from, tt.to)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidStatusTransition)
			}
		})
	}
}

func TestAppointmentStatusHelpers(t *testing.T) {
	a := &Appointment{Status: AppointmentStatusBooked}
	assert.True(t, a.IsBooked())
	assert.NoError(t, a.CanComplete())
	assert.NoError(t, a.CanCancel())

	a.Status = AppointmentStatusCompleted
	assert.True(t, a.IsCompleted())
	assert.True(t, a.Status.IsTerminal())
	assert.Error(t, a.CanCancel())

	a.Status = AppointmentStatusCancelled
	assert.True(t, a.IsCancelled())
	assert.Error(t, a.CanComplete())
}

func TestRoleSetFlagsAreIndependent(t *testing.T) {
	u := &User{Username: "drwho", Roles: RoleSet{RoleDentist, RoleAdmin}}
	assert.True(t, u.IsAdmin())
	assert.True(t, u.IsDentist())
	assert.False(t, u.IsPatient())
	assert.True(t, u.Roles.HasAny(RolePatient, RoleDentist))

	var nobody *User
	assert.False(t, nobody.IsAdmin())
}
