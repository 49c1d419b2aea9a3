package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/PrajwalVN/parking-booking/internal/auth"
	"github.com/PrajwalVN/parking-booking/internal/entities"
	apperrors "github.com/PrajwalVN/parking-booking/internal/errors"
	"github.com/PrajwalVN/parking-booking/internal/service"
)

type AdminHandler struct {
	Service  *service.BookingService
	Logs     *service.LogService
	validate *validator.Validate
}

func NewAdminHandler(svc *service.BookingService, logs *service.LogService) *AdminHandler {
	return &AdminHandler{Service: svc, Logs: logs, validate: validator.New()}
}

func (h *AdminHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Logs.List(auth.TokenFromRequest(r))
	if err != nil {
		writeError(w, err)
		return
	}
	if entries == nil {
		entries = []entities.LogEntry{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"logs": entries})
}

func (h *AdminHandler) MarkOccupied(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeSlotAction(w, r)
	if !ok {
		return
	}
	if err := h.Service.MarkOccupied(req.SlotNumber); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Marked occupied"})
}

func (h *AdminHandler) GenerateInvoice(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeSlotAction(w, r)
	if !ok {
		return
	}
	invoice, err := h.Service.GenerateInvoice(req.SlotNumber)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"invoice": invoice})
}

func (h *AdminHandler) ResetSlot(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeSlotAction(w, r)
	if !ok {
		return
	}
	if err := h.Service.Reset(req.SlotNumber); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Slot reset"})
}

func (h *AdminHandler) decodeSlotAction(w http.ResponseWriter, r *http.Request) (SlotActionRequest, bool) {
	var req SlotActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.ErrValidation)
		return req, false
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, apperrors.ErrValidation)
		return req, false
	}
	return req, true
}
