package service

import (
	"errors"
	"fmt"
	"log"

	"github.com/PrajwalVN/parking-booking/internal/db"
	apperrors "github.com/PrajwalVN/parking-booking/internal/errors"
	"github.com/PrajwalVN/parking-booking/internal/repository"
)

// JobService runs the periodic consistency sweep. A crash between the
// ledger write and the slot status flip can leave an active booking
// pointing at an empty slot; the sweep discards those orphans. A legal
// active booking always sits on a booked or occupied slot, so the
// discard is safe.
type JobService struct {
	slots  repository.SlotStore
	ledger repository.BookingLedger
}

func NewJobService(slots repository.SlotStore, ledger repository.BookingLedger) *JobService {
	return &JobService{slots: slots, ledger: ledger}
}

func (s *JobService) ReconcileOrphans() error {
	numbers, err := s.ledger.ActiveSlotNumbers()
	if err != nil {
		return fmt.Errorf("reconcile: failed to list active bookings: %w", err)
	}

	discarded := 0
	for _, n := range numbers {
		status, err := s.slots.GetStatus(n)
		if err != nil {
			if errors.Is(err, apperrors.ErrSlotNotFound) {
				log.Printf("Reconcile: active booking references unknown slot %d", n)
				continue
			}
			return fmt.Errorf("reconcile: failed to read slot %d: %w", n, err)
		}
		if status != db.SlotEmpty {
			continue
		}
		if err := s.ledger.DiscardActive(n); err != nil {
			return fmt.Errorf("reconcile: failed to discard orphan on slot %d: %w", n, err)
		}
		discarded++
	}

	if discarded > 0 {
		log.Printf("Reconcile: discarded %d orphaned active booking(s)", discarded)
	}
	return nil
}
