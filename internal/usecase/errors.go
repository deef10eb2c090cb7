package usecase

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNoSession              = errors.New("not signed in")
	ErrForbidden              = errors.New("action not permitted for the current role")
	ErrTransitionNotAllowed   = errors.New("only booked appointments can be completed or cancelled")
	ErrAppointmentNotEditable = errors.New("only booked appointments can be edited")
	ErrAppointmentNotFound    = errors.New("appointment not found")
	ErrDeleteNotConfirmed     = errors.New("deletion must be confirmed")
	ErrWorkflowClosed         = errors.New("appointment form is not open")
	ErrWorkflowBusy           = errors.New("appointment form is busy")
	ErrActionInFlight         = errors.New("another appointment action is in progress")
)

// Auth operations reported by AuthError
const (
	AuthOpLogin    = "login"
	AuthOpRegister = "register"
)

// AuthError reports a failed login or registration. Op is AuthOpRegister for
// the registration error, in which case no session was established.
type AuthError struct {
	Op  string
	Err error
}

func (e *AuthError) Error() string {
	return e.Op + " failed"
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// ValidationError lists the form fields that blocked a submission.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("invalid form: %s", strings.Join(names, ", "))
}
