package handler

import (
	"encoding/json"
	"net/http"

	"ads-dental-admin/internal/delivery/dto"
	"ads-dental-admin/internal/usecase"
	"ads-dental-admin/pkg/response"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	workflow           usecase.AppointmentWorkflow
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, workflow usecase.AppointmentWorkflow) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		workflow:           workflow,
	}
}

func (h *AppointmentHandler) GetAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetAppointments(r.Context())
	if err != nil {
		writeError(w, err, "Failed to load appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) CompleteAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	appointments, err := h.appointmentUsecase.MarkCompleted(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to update appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment marked as completed", appointments)
}

func (h *AppointmentHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	appointments, err := h.appointmentUsecase.Cancel(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to update appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled", appointments)
}

// DeleteAppointment requires ?confirm=true
func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	appointments, err := h.appointmentUsecase.DeleteAppointment(r.Context(), id, confirmed(r))
	if err != nil {
		writeError(w, err, "Failed to delete appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment deleted successfully", appointments)
}

// GetForm returns the modal state
func (h *AppointmentHandler) GetForm(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Appointment form retrieved", h.workflow.Snapshot())
}

// OpenCreateForm opens the modal for a new booking
func (h *AppointmentHandler) OpenCreateForm(w http.ResponseWriter, r *http.Request) {
	state, err := h.workflow.OpenCreate(r.Context())
	if err != nil {
		writeError(w, err, "Failed to open appointment form")
		return
	}

	response.Success(w, http.StatusOK, "Appointment form opened", state)
}

// OpenEditForm opens the modal pre-filled with an existing appointment
func (h *AppointmentHandler) OpenEditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	appointment, err := h.appointmentUsecase.FindAppointment(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to load appointment")
		return
	}

	state, err := h.workflow.OpenEdit(r.Context(), appointment)
	if err != nil {
		writeError(w, err, "Failed to open appointment form")
		return
	}

	response.Success(w, http.StatusOK, "Appointment form opened", state)
}

// BindForm updates the fields present in the body
func (h *AppointmentHandler) BindForm(w http.ResponseWriter, r *http.Request) {
	var patch dto.AppointmentFormPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	state, err := h.workflow.Bind(patch)
	if err != nil {
		writeError(w, err, "Failed to update appointment form")
		return
	}

	response.Success(w, http.StatusOK, "Appointment form updated", state)
}

// SubmitForm sends the form. A backend failure answers with the modal
// state so the inline error can be shown.
func (h *AppointmentHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	state, err := h.workflow.Submit(r.Context())
	if err != nil {
		if state != nil && state.Error != "" {
			response.BadGateway(w, state.Error, state)
			return
		}
		writeError(w, err, "Failed to save appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment saved successfully", state)
}

func (h *AppointmentHandler) CloseForm(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Appointment form closed", h.workflow.Close())
}
