package service

import (
	"fmt"

	"github.com/PrajwalVN/parking-booking/internal/entities"
	"github.com/PrajwalVN/parking-booking/internal/repository"
)

// LogService projects booking history into the admin log: every
// booking ever made, active and completed, ascending by start time
// across all slots.
type LogService struct {
	auth   AdminAuthService
	ledger repository.BookingLedger
}

func NewLogService(auth AdminAuthService, ledger repository.BookingLedger) *LogService {
	return &LogService{auth: auth, ledger: ledger}
}

func (s *LogService) List(token string) ([]entities.LogEntry, error) {
	if err := s.auth.Validate(token); err != nil {
		return nil, err
	}
	bookings, err := s.ledger.History(0)
	if err != nil {
		return nil, fmt.Errorf("error loading booking history: %w", err)
	}
	entries := make([]entities.LogEntry, 0, len(bookings))
	for _, b := range bookings {
		entries = append(entries, entities.LogEntryFrom(b))
	}
	return entries, nil
}
