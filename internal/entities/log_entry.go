package entities

import (
	"time"

	"github.com/PrajwalVN/parking-booking/internal/db"
)

// LogEntry is a booking projected into the admin log. EndTime and
// Amount are null while the booking is still active.
type LogEntry struct {
	SlotNumber    int        `json:"slotNumber"`
	Name          string     `json:"name"`
	Phone         string     `json:"phone"`
	VehicleNumber string     `json:"vehicleNumber"`
	StartTime     time.Time  `json:"startTime"`
	EndTime       *time.Time `json:"endTime"`
	Amount        *int       `json:"amount"`
	Status        string     `json:"status"`
}

func LogEntryFrom(b db.Booking) LogEntry {
	return LogEntry{
		SlotNumber:    b.SlotNumber,
		Name:          b.Name,
		Phone:         b.Phone,
		VehicleNumber: b.VehicleNumber,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		Amount:        b.Amount,
		Status:        b.Status,
	}
}
