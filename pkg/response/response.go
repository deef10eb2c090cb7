package response

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope every dashboard endpoint answers with.
// Lists are never paged, so there is no meta block.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Success(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	JSON(w, statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Error(w http.ResponseWriter, statusCode int, message string, err interface{}) {
	JSON(w, statusCode, Response{
		Success: false,
		Message: message,
		Error:   err,
	})
}

// ValidationError answers 400 with the per-field messages.
func ValidationError(w http.ResponseWriter, fields interface{}) {
	Error(w, http.StatusBadRequest, "Validation failed", fields)
}

func Unauthorized(w http.ResponseWriter, message string) {
	Error(w, http.StatusUnauthorized, orDefault(message, "Unauthorized"), nil)
}

func Forbidden(w http.ResponseWriter, message string) {
	Error(w, http.StatusForbidden, orDefault(message, "Forbidden"), nil)
}

func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, orDefault(message, "Resource not found"), nil)
}

// Conflict reports an action the current state does not allow, such as a
// status change on a terminal appointment.
func Conflict(w http.ResponseWriter, message string) {
	Error(w, http.StatusConflict, orDefault(message, "Conflict"), nil)
}

// BadGateway reports a failed backend call. details may carry state the
// browser should keep showing, or nil.
func BadGateway(w http.ResponseWriter, message string, details interface{}) {
	Error(w, http.StatusBadGateway, orDefault(message, "Backend request failed"), details)
}

func InternalServerError(w http.ResponseWriter, message string) {
	Error(w, http.StatusInternalServerError, orDefault(message, "Internal server error"), nil)
}

func orDefault(message, fallback string) string {
	if message == "" {
		return fallback
	}
	return message
}
