package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PrajwalVN/parking-booking/internal/db"
	apperrors "github.com/PrajwalVN/parking-booking/internal/errors"
)

var start = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func TestSlotStoreCompareAndSet(t *testing.T) {
	store := NewMemorySlotStore(3)

	require.NoError(t, store.TrySetStatus(1, db.SlotEmpty, db.SlotBooked))

	// Expected status no longer matches.
	err := store.TrySetStatus(1, db.SlotEmpty, db.SlotBooked)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	status, err := store.GetStatus(1)
	require.NoError(t, err)
	assert.Equal(t, db.SlotBooked, status)

	assert.ErrorIs(t, store.TrySetStatus(9, db.SlotEmpty, db.SlotBooked), apperrors.ErrSlotNotFound)
	_, err = store.GetStatus(9)
	assert.ErrorIs(t, err, apperrors.ErrSlotNotFound)
	assert.ErrorIs(t, store.ForceStatus(9, db.SlotEmpty), apperrors.ErrSlotNotFound)
}

func TestSlotStoreGetAllOrdered(t *testing.T) {
	store := NewMemorySlotStore(4)
	require.NoError(t, store.ForceStatus(3, db.SlotOccupied))

	slots, err := store.GetAll()
	require.NoError(t, err)
	require.Len(t, slots, 4)
	for i, s := range slots {
		assert.Equal(t, i+1, s.Number)
	}
	assert.Equal(t, db.SlotOccupied, slots[2].Status)
}

func TestLedgerSingleActivePerSlot(t *testing.T) {
	ledger := NewMemoryBookingLedger()

	_, err := ledger.CreateActive(1, "Alice", "555-0101", "KA-01-1234", start)
	require.NoError(t, err)
	_, err = ledger.CreateActive(1, "Bob", "555-0202", "KA-02-5678", start)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyActive)

	require.NoError(t, ledger.DiscardActive(1))
	require.NoError(t, ledger.DiscardActive(1)) // no-op when none

	_, err = ledger.CreateActive(1, "Bob", "555-0202", "KA-02-5678", start)
	assert.NoError(t, err)
}

func TestLedgerFinalize(t *testing.T) {
	ledger := NewMemoryBookingLedger()

	_, err := ledger.Finalize(1, start, 10)
	assert.ErrorIs(t, err, apperrors.ErrNoActiveBooking)

	_, err = ledger.CreateActive(1, "Alice", "555-0101", "KA-01-1234", start)
	require.NoError(t, err)

	end := start.Add(90 * time.Minute)
	b, err := ledger.Finalize(1, end, 20)
	require.NoError(t, err)
	assert.Equal(t, db.BookingCompleted, b.Status)
	require.NotNil(t, b.EndTime)
	assert.Equal(t, end, *b.EndTime)
	require.NotNil(t, b.Amount)
	assert.Equal(t, 20, *b.Amount)

	// End time and amount are set exactly once.
	_, err = ledger.Finalize(1, end.Add(time.Hour), 30)
	assert.ErrorIs(t, err, apperrors.ErrNoActiveBooking)
}

func TestLedgerHistoryOrderingAndFilter(t *testing.T) {
	ledger := NewMemoryBookingLedger()

	_, err := ledger.CreateActive(2, "Bob", "555-0202", "KA-02-5678", start.Add(time.Hour))
	require.NoError(t, err)
	_, err = ledger.CreateActive(1, "Alice", "555-0101", "KA-01-1234", start)
	require.NoError(t, err)
	_, err = ledger.Finalize(1, start.Add(2*time.Hour), 20)
	require.NoError(t, err)
	_, err = ledger.CreateActive(3, "Carol", "555-0303", "KA-03-9999", start.Add(30*time.Minute))
	require.NoError(t, err)

	all, err := ledger.History(0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int{1, 3, 2}, []int{all[0].SlotNumber, all[1].SlotNumber, all[2].SlotNumber})

	one, err := ledger.History(2)
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, "Bob", one[0].Name)

	numbers, err := ledger.ActiveSlotNumbers()
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, numbers)
}
