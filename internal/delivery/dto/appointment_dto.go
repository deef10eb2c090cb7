package dto

import "ads-dental-admin/internal/domain/entity"

// AppointmentForm holds the modal fields exactly as bound in the browser:
// every value, ids included, is a string until submit.
type AppointmentForm struct {
	AppointmentDate string `json:"appointment_date" validate:"required"`
	AppointmentTime string `json:"appointment_time" validate:"required"`
	Status          string `json:"status" validate:"required,oneof=BOOKED COMPLETED CANCELLED"`
	PatientID       string `json:"patient_id" validate:"required,numeric"`
	DentistID       string `json:"dentist_id" validate:"required,numeric"`
	SurgeryID       string `json:"surgery_id" validate:"required,numeric"`
}

// AppointmentFormPatch changes only the fields that are present.
type AppointmentFormPatch struct {
	AppointmentDate *string `json:"appointment_date,omitempty"`
	AppointmentTime *string `json:"appointment_time,omitempty"`
	Status          *string `json:"status,omitempty"`
	PatientID       *string `json:"patient_id,omitempty"`
	DentistID       *string `json:"dentist_id,omitempty"`
	SurgeryID       *string `json:"surgery_id,omitempty"`
}

// AppointmentWorkflowResponse is the state of the booking/editing modal.
type AppointmentWorkflowResponse struct {
	State         string           `json:"state"`
	Mode          string           `json:"mode,omitempty"`
	AppointmentID int              `json:"appointment_id,omitempty"`
	Form          AppointmentForm  `json:"form"`
	Patients      []entity.Patient `json:"patients"`
	Dentists      []entity.Dentist `json:"dentists"`
	Surgeries     []entity.Surgery `json:"surgeries"`
	Error         string           `json:"error,omitempty"`
}

type AppointmentListResponse struct {
	Appointments []entity.Appointment `json:"appointments"`
	Total        int                  `json:"total"`
}
