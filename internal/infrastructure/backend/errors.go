package backend

import "fmt"

// Operations performed against the backend
const (
	OpList     = "list"
	OpCreate   = "create"
	OpUpdate   = "update"
	OpDelete   = "delete"
	OpLogin    = "login"
	OpRegister = "register"
)

// Entity kinds addressed by the gateway
const (
	KindPatient     = "patient"
	KindDentist     = "dentist"
	KindSurgery     = "surgery"
	KindAppointment = "appointment"
	KindAddress     = "address"
	KindAccount     = "account"
)

// RequestError is the single failure contract of the gateway. StatusCode is
// zero when no HTTP response was received.
type RequestError struct {
	Operation  string
	EntityKind string
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to %s %s: backend returned %d", e.Operation, e.EntityKind, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.EntityKind, e.Err)
	}
	return fmt.Sprintf("failed to %s %s", e.Operation, e.EntityKind)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}
