package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/PrajwalVN/parking-booking/internal/errors"
	"github.com/PrajwalVN/parking-booking/internal/service"
)

type AdminAuthHandler struct {
	service  service.AdminAuthService
	validate *validator.Validate
}

func NewAdminAuthHandler(svc service.AdminAuthService) *AdminAuthHandler {
	return &AdminAuthHandler{service: svc, validate: validator.New()}
}

func (h *AdminAuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.ErrValidation)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, apperrors.ErrValidation)
		return
	}

	token, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, LoginResponse{Token: token})
}
