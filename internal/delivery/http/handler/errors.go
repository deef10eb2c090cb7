package handler

import (
	"errors"
	"net/http"
	"strconv"

	"ads-dental-admin/internal/infrastructure/backend"
	"ads-dental-admin/internal/usecase"
	"ads-dental-admin/pkg/response"

	"github.com/gorilla/mux"
)

// writeError maps usecase and gateway failures to short user-facing
// messages. fallback names the action that failed.
func writeError(w http.ResponseWriter, err error, fallback string) {
	var (
		validationErr *usecase.ValidationError
		authErr       *usecase.AuthError
		requestErr    *backend.RequestError
	)

	switch {
	case errors.As(err, &validationErr):
		response.ValidationError(w, validationErr.Fields)
	case errors.As(err, &authErr):
		if authErr.Op == usecase.AuthOpRegister {
			response.Error(w, http.StatusBadRequest, "Registration failed", nil)
			return
		}
		response.Unauthorized(w, "Login failed")
	case errors.Is(err, usecase.ErrNoSession):
		response.Unauthorized(w, "Not signed in")
	case errors.Is(err, usecase.ErrForbidden):
		response.Forbidden(w, "You don't have permission to perform this action")
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		response.NotFound(w, "Appointment not found")
	case errors.Is(err, usecase.ErrDeleteNotConfirmed):
		response.Error(w, http.StatusBadRequest, "Please confirm the deletion", nil)
	case errors.Is(err, usecase.ErrTransitionNotAllowed),
		errors.Is(err, usecase.ErrAppointmentNotEditable),
		errors.Is(err, usecase.ErrWorkflowClosed),
		errors.Is(err, usecase.ErrWorkflowBusy),
		errors.Is(err, usecase.ErrActionInFlight):
		response.Conflict(w, err.Error())
	case errors.As(err, &requestErr):
		if requestErr.StatusCode == http.StatusUnauthorized {
			response.Unauthorized(w, "Session expired, please sign in again")
			return
		}
		response.BadGateway(w, fallback, nil)
	default:
		response.InternalServerError(w, fallback)
	}
}

func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func confirmed(r *http.Request) bool {
	ok, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))
	return ok
}
