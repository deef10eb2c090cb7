package handler

import (
	"net/http"

	"ads-dental-admin/internal/usecase"
	"ads-dental-admin/pkg/response"
)

// ReferenceHandler serves the read-only dentist, surgery and address pages.
type ReferenceHandler struct {
	dentistUsecase usecase.DentistUsecase
	surgeryUsecase usecase.SurgeryUsecase
	addressUsecase usecase.AddressUsecase
}

func NewReferenceHandler(
	dentistUsecase usecase.DentistUsecase,
	surgeryUsecase usecase.SurgeryUsecase,
	addressUsecase usecase.AddressUsecase,
) *ReferenceHandler {
	return &ReferenceHandler{
		dentistUsecase: dentistUsecase,
		surgeryUsecase: surgeryUsecase,
		addressUsecase: addressUsecase,
	}
}

func (h *ReferenceHandler) GetDentists(w http.ResponseWriter, r *http.Request) {
	dentists, err := h.dentistUsecase.GetDentists(r.Context())
	if err != nil {
		writeError(w, err, "Failed to load dentists")
		return
	}

	response.Success(w, http.StatusOK, "Dentists retrieved successfully", dentists)
}

func (h *ReferenceHandler) GetSurgeries(w http.ResponseWriter, r *http.Request) {
	surgeries, err := h.surgeryUsecase.GetSurgeries(r.Context())
	if err != nil {
		writeError(w, err, "Failed to load surgeries")
		return
	}

	response.Success(w, http.StatusOK, "Surgeries retrieved successfully", surgeries)
}

// GetAddresses sorts by ?sort=city|state
func (h *ReferenceHandler) GetAddresses(w http.ResponseWriter, r *http.Request) {
	addresses, err := h.addressUsecase.GetAddresses(r.Context(), r.URL.Query().Get("sort"))
	if err != nil {
		writeError(w, err, "Failed to load addresses")
		return
	}

	response.Success(w, http.StatusOK, "Addresses retrieved successfully", addresses)
}
