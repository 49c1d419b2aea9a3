package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/PrajwalVN/parking-booking/internal/entities"
	apperrors "github.com/PrajwalVN/parking-booking/internal/errors"
	"github.com/PrajwalVN/parking-booking/internal/service"
)

type SlotHandler struct {
	Service  *service.BookingService
	validate *validator.Validate
}

func NewSlotHandler(svc *service.BookingService) *SlotHandler {
	return &SlotHandler{Service: svc, validate: validator.New()}
}

func (h *SlotHandler) ListSlots(w http.ResponseWriter, r *http.Request) {
	slots, err := h.Service.ListSlots()
	if err != nil {
		writeError(w, err)
		return
	}
	if slots == nil {
		slots = []entities.Slot{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"slots": slots})
}

func (h *SlotHandler) Book(w http.ResponseWriter, r *http.Request) {
	var req BookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.ErrValidation)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, apperrors.ErrValidation)
		return
	}
	booking, err := h.Service.Book(req.SlotNumber, req.Name, req.Phone, req.VehicleNumber)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Booked",
		"booking": entities.BookingResponseFrom(booking),
	})
}
