package entities

import "time"

// Invoice is the billing summary computed when a booking is finalized.
// It is derived from the booking record and never persisted on its own.
type Invoice struct {
	SlotNumber    int       `json:"slotNumber"`
	Name          string    `json:"name"`
	VehicleNumber string    `json:"vehicleNumber"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	BilledHours   int       `json:"billedHours"`
	RatePerHour   int       `json:"ratePerHour"`
	Amount        int       `json:"amount"`
}
