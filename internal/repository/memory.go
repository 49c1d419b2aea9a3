package repository

import (
	"sort"
	"sync"
	"time"

	"github.com/PrajwalVN/parking-booking/internal/db"
	apperrors "github.com/PrajwalVN/parking-booking/internal/errors"
)

// MemorySlotStore is a mutex-guarded SlotStore. It carries the same
// compare-and-set contract as the Postgres store and backs the tests.
type MemorySlotStore struct {
	mu    sync.Mutex
	slots map[int]string
}

func NewMemorySlotStore(count int) *MemorySlotStore {
	s := &MemorySlotStore{slots: make(map[int]string, count)}
	for n := 1; n <= count; n++ {
		s.slots[n] = db.SlotEmpty
	}
	return s
}

func (s *MemorySlotStore) GetAll() ([]db.Slot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	slots := make([]db.Slot, 0, len(s.slots))
	for n, status := range s.slots {
		slots = append(slots, db.Slot{Number: n, Status: status})
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].Number < slots[j].Number })
	return slots, nil
}

func (s *MemorySlotStore) GetStatus(number int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	status, ok := s.slots[number]
	if !ok {
		return "", apperrors.ErrSlotNotFound
	}
	return status, nil
}

func (s *MemorySlotStore) TrySetStatus(number int, expected, next string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	status, ok := s.slots[number]
	if !ok {
		return apperrors.ErrSlotNotFound
	}
	if status != expected {
		return apperrors.ErrConflict
	}
	s.slots[number] = next
	return nil
}

func (s *MemorySlotStore) ForceStatus(number int, next string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.slots[number]; !ok {
		return apperrors.ErrSlotNotFound
	}
	s.slots[number] = next
	return nil
}

func (s *MemorySlotStore) Seed(count int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for n := 1; n <= count; n++ {
		if _, ok := s.slots[n]; !ok {
			s.slots[n] = db.SlotEmpty
		}
	}
	return nil
}

// MemoryBookingLedger keeps active bookings keyed by slot number and
// completed ones in an append-only list.
type MemoryBookingLedger struct {
	mu        sync.Mutex
	nextID    int
	active    map[int]db.Booking
	completed []db.Booking
}

func NewMemoryBookingLedger() *MemoryBookingLedger {
	return &MemoryBookingLedger{nextID: 1, active: make(map[int]db.Booking)}
}

func (l *MemoryBookingLedger) CreateActive(slotNumber int, name, phone, vehicleNumber string, startTime time.Time) (*db.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.active[slotNumber]; ok {
		return nil, apperrors.ErrAlreadyActive
	}
	b := db.Booking{
		ID:            l.nextID,
		SlotNumber:    slotNumber,
		Name:          name,
		Phone:         phone,
		VehicleNumber: vehicleNumber,
		StartTime:     startTime,
		Status:        db.BookingActive,
	}
	l.nextID++
	l.active[slotNumber] = b
	return &b, nil
}

func (l *MemoryBookingLedger) GetActive(slotNumber int) (*db.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	b, ok := l.active[slotNumber]
	if !ok {
		return nil, apperrors.ErrNoActiveBooking
	}
	return &b, nil
}

func (l *MemoryBookingLedger) Finalize(slotNumber int, endTime time.Time, amount int) (*db.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	b, ok := l.active[slotNumber]
	if !ok {
		return nil, apperrors.ErrNoActiveBooking
	}
	delete(l.active, slotNumber)
	end := endTime
	amt := amount
	b.EndTime = &end
	b.Amount = &amt
	b.Status = db.BookingCompleted
	l.completed = append(l.completed, b)
	return &b, nil
}

func (l *MemoryBookingLedger) DiscardActive(slotNumber int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.active, slotNumber)
	return nil
}

func (l *MemoryBookingLedger) History(slotNumber int) ([]db.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var bookings []db.Booking
	for _, b := range l.active {
		if slotNumber == 0 || b.SlotNumber == slotNumber {
			bookings = append(bookings, b)
		}
	}
	for _, b := range l.completed {
		if slotNumber == 0 || b.SlotNumber == slotNumber {
			bookings = append(bookings, b)
		}
	}
	sort.Slice(bookings, func(i, j int) bool {
		if bookings[i].StartTime.Equal(bookings[j].StartTime) {
			return bookings[i].ID < bookings[j].ID
		}
		return bookings[i].StartTime.Before(bookings[j].StartTime)
	})
	return bookings, nil
}

func (l *MemoryBookingLedger) ActiveSlotNumbers() ([]int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	numbers := make([]int, 0, len(l.active))
	for n := range l.active {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	return numbers, nil
}
