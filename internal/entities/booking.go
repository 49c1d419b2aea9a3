package entities

import (
	"time"

	"github.com/PrajwalVN/parking-booking/internal/db"
)

// BookingResponse is returned to the client on a successful booking.
type BookingResponse struct {
	SlotNumber    int       `json:"slotNumber"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	VehicleNumber string    `json:"vehicleNumber"`
	StartTime     time.Time `json:"startTime"`
	Status        string    `json:"status"`
}

func BookingResponseFrom(b *db.Booking) BookingResponse {
	return BookingResponse{
		SlotNumber:    b.SlotNumber,
		Name:          b.Name,
		Phone:         b.Phone,
		VehicleNumber: b.VehicleNumber,
		StartTime:     b.StartTime,
		Status:        b.Status,
	}
}
