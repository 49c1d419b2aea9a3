package service

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/PrajwalVN/parking-booking/internal/db"
	"github.com/PrajwalVN/parking-booking/internal/entities"
	apperrors "github.com/PrajwalVN/parking-booking/internal/errors"
	"github.com/PrajwalVN/parking-booking/internal/repository"
)

// BookingService is the single point of truth for slot transitions:
// empty -> booked -> occupied, with reset as the unconditional escape
// hatch back to empty. Invoice generation finalizes the booking but
// leaves the slot status alone until an explicit reset.
type BookingService struct {
	slots       repository.SlotStore
	ledger      repository.BookingLedger
	ratePerHour int
	now         func() time.Time
}

func NewBookingService(slots repository.SlotStore, ledger repository.BookingLedger, ratePerHour int) *BookingService {
	return &BookingService{
		slots:       slots,
		ledger:      ledger,
		ratePerHour: ratePerHour,
		now:         time.Now,
	}
}

// WithClock overrides the service clock. Tests use it to pin elapsed
// time for invoice computation.
func (s *BookingService) WithClock(now func() time.Time) *BookingService {
	s.now = now
	return s
}

func (s *BookingService) ListSlots() ([]entities.Slot, error) {
	slots, err := s.slots.GetAll()
	if err != nil {
		return nil, fmt.Errorf("error listing slots: %w", err)
	}
	out := make([]entities.Slot, 0, len(slots))
	for _, sl := range slots {
		out = append(out, entities.Slot{Number: sl.Number, Status: sl.Status})
	}
	return out, nil
}

// Book reserves an empty slot. The ledger entry is written first and
// the slot status flipped second; if the compare-and-set loses the
// race the entry is discarded again. There is no transaction spanning
// both stores, so this ordering plus the compensating discard is what
// keeps them consistent.
func (s *BookingService) Book(slotNumber int, name, phone, vehicleNumber string) (*db.Booking, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	vehicleNumber = strings.TrimSpace(vehicleNumber)
	if slotNumber <= 0 || name == "" || phone == "" || vehicleNumber == "" {
		return nil, apperrors.ErrValidation
	}

	status, err := s.slots.GetStatus(slotNumber)
	if err != nil {
		return nil, err
	}
	if status != db.SlotEmpty {
		return nil, apperrors.ErrConflict
	}

	booking, err := s.ledger.CreateActive(slotNumber, name, phone, vehicleNumber, s.now())
	if err != nil {
		if errors.Is(err, apperrors.ErrAlreadyActive) {
			// Lost the race to a concurrent booking.
			return nil, apperrors.ErrConflict
		}
		return nil, err
	}

	if err := s.slots.TrySetStatus(slotNumber, db.SlotEmpty, db.SlotBooked); err != nil {
		if derr := s.ledger.DiscardActive(slotNumber); derr != nil {
			log.Printf("Failed to discard booking for slot %d after status conflict: %v", slotNumber, derr)
		}
		return nil, err
	}
	return booking, nil
}

// MarkOccupied confirms the vehicle arrived. Legal only from booked;
// the booking record is untouched.
func (s *BookingService) MarkOccupied(slotNumber int) error {
	err := s.slots.TrySetStatus(slotNumber, db.SlotBooked, db.SlotOccupied)
	if errors.Is(err, apperrors.ErrConflict) {
		return apperrors.ErrInvalidTransition
	}
	return err
}

// GenerateInvoice closes the active booking on a booked or occupied
// slot and returns the bill: each started hour is charged, minimum
// one. The slot keeps its status until an explicit reset.
func (s *BookingService) GenerateInvoice(slotNumber int) (*entities.Invoice, error) {
	status, err := s.slots.GetStatus(slotNumber)
	if err != nil {
		return nil, err
	}
	if status != db.SlotBooked && status != db.SlotOccupied {
		return nil, apperrors.ErrInvalidTransition
	}

	booking, err := s.ledger.GetActive(slotNumber)
	if err != nil {
		return nil, err
	}

	endTime := s.now()
	billedHours := int(math.Ceil(endTime.Sub(booking.StartTime).Hours()))
	if billedHours < 1 {
		billedHours = 1
	}
	amount := billedHours * s.ratePerHour

	finalized, err := s.ledger.Finalize(slotNumber, endTime, amount)
	if err != nil {
		return nil, err
	}

	return &entities.Invoice{
		SlotNumber:    finalized.SlotNumber,
		Name:          finalized.Name,
		VehicleNumber: finalized.VehicleNumber,
		StartTime:     finalized.StartTime,
		EndTime:       endTime,
		BilledHours:   billedHours,
		RatePerHour:   s.ratePerHour,
		Amount:        amount,
	}, nil
}

// Reset forces the slot back to empty from any status, discarding the
// active booking if there is one. Resetting an empty slot is a no-op.
func (s *BookingService) Reset(slotNumber int) error {
	if _, err := s.slots.GetStatus(slotNumber); err != nil {
		return err
	}
	if err := s.ledger.DiscardActive(slotNumber); err != nil {
		return err
	}
	return s.slots.ForceStatus(slotNumber, db.SlotEmpty)
}
