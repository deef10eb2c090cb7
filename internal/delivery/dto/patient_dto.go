package dto

import "ads-dental-admin/internal/domain/entity"

// Request DTOs

type AddressRequest struct {
	Street  string `json:"street" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	ZipCode string `json:"zip_code" validate:"required"`
}

// PatientRequest is the full record sent on create and replace.
type PatientRequest struct {
	FirstName string          `json:"first_name" validate:"required"`
	LastName  string          `json:"last_name" validate:"required"`
	Email     string          `json:"email" validate:"required,email"`
	Phone     string          `json:"phone" validate:"required"`
	AddressID *int            `json:"address_id,omitempty" validate:"omitempty,gte=1"`
	Address   *AddressRequest `json:"address,omitempty" validate:"omitempty"`
}

// Response DTOs

type PatientListResponse struct {
	Patients []entity.Patient `json:"patients"`
	Total    int              `json:"total"`
	Search   string           `json:"search,omitempty"`
}

type DentistListResponse struct {
	Dentists []entity.Dentist `json:"dentists"`
	Total    int              `json:"total"`
}

type SurgeryListResponse struct {
	Surgeries []entity.Surgery `json:"surgeries"`
	Total     int              `json:"total"`
}

type AddressListResponse struct {
	Addresses []entity.Address `json:"addresses"`
	Total     int              `json:"total"`
	SortBy    string           `json:"sort_by"`
}
