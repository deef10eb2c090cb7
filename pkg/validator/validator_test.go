package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleForm struct {
	Date   string `json:"appointment_date" validate:"required"`
	ID     string `json:"patient_id" validate:"required,numeric"`
	Status string `json:"status" validate:"required,oneof=BOOKED COMPLETED CANCELLED"`
	Email  string `json:"email" validate:"omitempty,email"`
}

func TestFormatValidationErrorsUsesJSONNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&sampleForm{ID: "abc", Status: "PENDING", Email: "nope"})
	msgs := v.FormatValidationErrors(err)

	assert.Equal(t, "appointment_date is required", msgs["appointment_date"])
	assert.Equal(t, "patient_id must be a number", msgs["patient_id"])
	assert.Equal(t, "status must be one of BOOKED COMPLETED CANCELLED", msgs["status"])
	assert.Equal(t, "email must be a valid email address", msgs["email"])
}

func TestValidatePasses(t *testing.T) {
	v := NewValidator()
	assert.NoError(t, v.Validate(&sampleForm{Date: "2024-06-01", ID: "3", Status: "BOOKED"}))
}

func TestFormatValidationErrorsIgnoresOtherErrors(t *testing.T) {
	assert.Empty(t, NewValidator().FormatValidationErrors(errors.New("boom")))
}
