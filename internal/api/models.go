package api

// Booking
type BookRequest struct {
	SlotNumber    int    `json:"slotNumber" validate:"required,gt=0"`
	Name          string `json:"name" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	VehicleNumber string `json:"vehicleNumber" validate:"required"`
}

// Admin login
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// Mark occupied, generate invoice, reset
type SlotActionRequest struct {
	SlotNumber int `json:"slotNumber" validate:"required,gt=0"`
}
