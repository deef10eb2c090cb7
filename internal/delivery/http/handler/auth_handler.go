package handler

import (
	"encoding/json"
	"net/http"

	"ads-dental-admin/internal/converter"
	"ads-dental-admin/internal/delivery/dto"
	"ads-dental-admin/internal/usecase"
	"ads-dental-admin/pkg/response"
	"ads-dental-admin/pkg/validator"
)

type AuthHandler struct {
	sessionUsecase usecase.SessionUsecase
	validator      *validator.CustomValidator
}

func NewAuthHandler(sessionUsecase usecase.SessionUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		sessionUsecase: sessionUsecase,
		validator:      validator,
	}
}

// Login signs the dashboard in
// @Summary Login
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	session, err := h.sessionUsecase.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err, "Login failed")
		return
	}

	response.Success(w, http.StatusOK, "Login successful", converter.SessionToResponse(session))
}

// Register creates an account and signs in with it
// @Summary Register
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Register Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	session, err := h.sessionUsecase.Register(r.Context(), req.Username, req.Email, req.Password, req.Role)
	if err != nil {
		writeError(w, err, "Registration failed")
		return
	}

	response.Success(w, http.StatusCreated, "Account created successfully", converter.SessionToResponse(session))
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionUsecase.Logout(r.Context()); err != nil {
		response.InternalServerError(w, "Failed to clear the saved session")
		return
	}

	response.Success(w, http.StatusOK, "Logout successful", nil)
}

// Me returns the signed-in user and capability flags
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	session, ok := h.sessionUsecase.Current()
	if !ok {
		response.Unauthorized(w, "Not signed in")
		return
	}

	response.Success(w, http.StatusOK, "Session retrieved successfully", converter.SessionToResponse(session))
}
