package converter

import (
	"fmt"
	"strconv"

	"ads-dental-admin/internal/delivery/dto"
	"ads-dental-admin/internal/domain/entity"
)

// AppointmentToForm binds an appointment to the modal fields. Missing ids
// become empty strings.
func AppointmentToForm(appointment *entity.Appointment) dto.AppointmentForm {
	if appointment == nil {
		return EmptyAppointmentForm()
	}
	return dto.AppointmentForm{
		AppointmentDate: appointment.AppointmentDate,
		AppointmentTime: appointment.AppointmentTime,
		Status:          string(appointment.Status),
		PatientID:       idToString(appointment.PatientID),
		DentistID:       idToString(appointment.DentistID),
		SurgeryID:       idToString(appointment.SurgeryID),
	}
}

// EmptyAppointmentForm is the create-mode default.
func EmptyAppointmentForm() dto.AppointmentForm {
	return dto.AppointmentForm{Status: string(entity.AppointmentStatusBooked)}
}

// ApplyFormPatch overwrites the fields present in patch.
func ApplyFormPatch(form dto.AppointmentForm, patch dto.AppointmentFormPatch) dto.AppointmentForm {
	if patch.AppointmentDate != nil {
		form.AppointmentDate = *patch.AppointmentDate
	}
	if patch.AppointmentTime != nil {
		form.AppointmentTime = *patch.AppointmentTime
	}
	if patch.Status != nil {
		form.Status = *patch.Status
	}
	if patch.PatientID != nil {
		form.PatientID = *patch.PatientID
	}
	if patch.DentistID != nil {
		form.DentistID = *patch.DentistID
	}
	if patch.SurgeryID != nil {
		form.SurgeryID = *patch.SurgeryID
	}
	return form
}

// FormToAppointment parses the foreign keys and builds the create payload.
// The returned map names the fields that failed to parse.
func FormToAppointment(form dto.AppointmentForm) (*entity.Appointment, map[string]string) {
	invalid := map[string]string{}
	patientID := parseID("patient_id", form.PatientID, invalid)
	dentistID := parseID("dentist_id", form.DentistID, invalid)
	surgeryID := parseID("surgery_id", form.SurgeryID, invalid)
	if len(invalid) > 0 {
		return nil, invalid
	}

	return &entity.Appointment{
		AppointmentDate: form.AppointmentDate,
		AppointmentTime: form.AppointmentTime,
		Status:          entity.AppointmentStatus(form.Status),
		PatientID:       &patientID,
		DentistID:       &dentistID,
		SurgeryID:       &surgeryID,
	}, nil
}

// AppointmentToPatch turns a full form payload into an update that carries every form field.
func AppointmentToPatch(appointment *entity.Appointment) entity.AppointmentPatch {
	status := appointment.Status
	return entity.AppointmentPatch{
		AppointmentDate: &appointment.AppointmentDate,
		AppointmentTime: &appointment.AppointmentTime,
		Status:          &status,
		PatientID:       appointment.PatientID,
		DentistID:       appointment.DentistID,
		SurgeryID:       appointment.SurgeryID,
	}
}

// AppointmentsToResponse wraps a list for the listing view
func AppointmentsToResponse(appointments []entity.Appointment) *dto.AppointmentListResponse {
	if appointments == nil {
		appointments = []entity.Appointment{}
	}
	return &dto.AppointmentListResponse{
		Appointments: appointments,
		Total:        len(appointments),
	}
}

func idToString(id *int) string {
	if id == nil {
		return ""
	}
	return strconv.Itoa(*id)
}

func parseID(field, value string, invalid map[string]string) int {
	id, err := strconv.Atoi(value)
	if err != nil || id <= 0 {
		invalid[field] = fmt.Sprintf("%s must be a positive whole number", field)
		return 0
	}
	return id
}
