package db

import "time"

// Slot statuses. A slot is empty exactly when no active booking
// references it; booked and occupied both carry one active booking.
const (
	SlotEmpty    = "empty"
	SlotBooked   = "booked"
	SlotOccupied = "occupied"
)

// Booking statuses.
const (
	BookingActive    = "active"
	BookingCompleted = "completed"
)

type Slot struct {
	Number int
	Status string
}

type Booking struct {
	ID            int
	SlotNumber    int
	Name          string
	Phone         string
	VehicleNumber string
	StartTime     time.Time
	EndTime       *time.Time
	Amount        *int
	Status        string
}
