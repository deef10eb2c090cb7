package handler

import (
	"encoding/json"
	"net/http"

	"ads-dental-admin/internal/delivery/dto"
	"ads-dental-admin/internal/usecase"
	"ads-dental-admin/pkg/response"
	"ads-dental-admin/pkg/validator"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

// GetPatients lists patients, filtered by ?search=
func (h *PatientHandler) GetPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientUsecase.GetPatients(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, err, "Failed to load patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	patients, err := h.patientUsecase.CreatePatient(r.Context(), req)
	if err != nil {
		writeError(w, err, "Failed to create patient")
		return
	}

	response.Success(w, http.StatusCreated, "Patient created successfully", patients)
}

func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	patientNo, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid patient number", nil)
		return
	}

	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	patients, err := h.patientUsecase.UpdatePatient(r.Context(), patientNo, req)
	if err != nil {
		writeError(w, err, "Failed to update patient")
		return
	}

	response.Success(w, http.StatusOK, "Patient updated successfully", patients)
}

// DeletePatient requires ?confirm=true
func (h *PatientHandler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	patientNo, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid patient number", nil)
		return
	}

	patients, err := h.patientUsecase.DeletePatient(r.Context(), patientNo, confirmed(r))
	if err != nil {
		writeError(w, err, "Failed to delete patient")
		return
	}

	response.Success(w, http.StatusOK, "Patient deleted successfully", patients)
}

func (h *PatientHandler) decode(w http.ResponseWriter, r *http.Request) (*dto.PatientRequest, bool) {
	var req dto.PatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return nil, false
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return nil, false
	}
	return &req, true
}
