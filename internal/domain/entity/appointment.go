package entity

import "errors"

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusBooked    AppointmentStatus = "BOOKED"
	AppointmentStatusCompleted AppointmentStatus = "COMPLETED"
	AppointmentStatusCancelled AppointmentStatus = "CANCELLED"
)

var ErrInvalidStatusTransition = errors.New("appointment status transition not allowed")

// Appointment as returned by the backend. The nested patient, dentist and
// surgery are display copies and may be absent.
type Appointment struct {
	ID              int               `json:"id,omitempty"`
	AppointmentDate string            `json:"appointment_date"`
	AppointmentTime string            `json:"appointment_time"`
	Status          AppointmentStatus `json:"status"`
	PatientID       *int              `json:"patient_id,omitempty"`
	DentistID       *int              `json:"dentist_id,omitempty"`
	SurgeryID       *int              `json:"surgery_id,omitempty"`

	Patient *Patient `json:"patient,omitempty"`
	Dentist *Dentist `json:"dentist,omitempty"`
	Surgery *Surgery `json:"surgery,omitempty"`
}

// AppointmentPatch is a partial update; nil fields are left out of the request body.
type AppointmentPatch struct {
	AppointmentDate *string            `json:"appointment_date,omitempty"`
	AppointmentTime *string            `json:"appointment_time,omitempty"`
	Status          *AppointmentStatus `json:"status,omitempty"`
	PatientID       *int               `json:"patient_id,omitempty"`
	DentistID       *int               `json:"dentist_id,omitempty"`
	SurgeryID       *int               `json:"surgery_id,omitempty"`
}

// StatusPatch builds a patch that only touches the status.
func StatusPatch(status AppointmentStatus) AppointmentPatch {
	return AppointmentPatch{Status: &status}
}

// Valid reports whether s is one of the known statuses.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusBooked, AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is permitted.
func (s AppointmentStatus) IsTerminal() bool {
	return s == AppointmentStatusCompleted || s == AppointmentStatusCancelled
}

// CanTransition checks a status change. Staying in the same status is allowed
// only while BOOKED; terminal statuses accept nothing.
func CanTransition(from, to AppointmentStatus) error {
	if !from.Valid() || !to.Valid() || from != AppointmentStatusBooked {
		return ErrInvalidStatusTransition
	}
	return nil
}

// IsBooked checks if the appointment is still open
func (a *Appointment) IsBooked() bool {
	return a.Status == AppointmentStatusBooked
}

// IsCompleted checks if the appointment has been completed
func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}

// IsCancelled checks if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// CanComplete checks whether the appointment may be marked completed
func (a *Appointment) CanComplete() error {
	return CanTransition(a.Status, AppointmentStatusCompleted)
}

// CanCancel checks whether the appointment may be cancelled
func (a *Appointment) CanCancel() error {
	return CanTransition(a.Status, AppointmentStatusCancelled)
}
