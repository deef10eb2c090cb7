package dto

import "time"

// Request DTOs

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=ADMIN DENTIST PATIENT"`
}

// Response DTOs

type UserResponse struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

// SessionResponse never carries the token; the dashboard keeps it server-side.
type SessionResponse struct {
	User      UserResponse `json:"user"`
	IsAdmin   bool         `json:"is_admin"`
	IsDentist bool         `json:"is_dentist"`
	IsPatient bool         `json:"is_patient"`
	ExpiresAt *time.Time   `json:"expires_at,omitempty"`
}
