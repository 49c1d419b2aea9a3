package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/PrajwalVN/parking-booking/internal/errors"
	"github.com/PrajwalVN/parking-booking/internal/repository"
)

func TestLogListRequiresValidToken(t *testing.T) {
	auth := newTestAuth(t)
	svc := NewLogService(auth, repository.NewMemoryBookingLedger())

	_, err := svc.List("garbage")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestLogListOrderedAcrossSlots(t *testing.T) {
	auth := newTestAuth(t)
	ledger := repository.NewMemoryBookingLedger()
	svc := NewLogService(auth, ledger)

	// Interleaved start times on different slots, one finalized.
	_, err := ledger.CreateActive(2, "Bob", "555-0202", "KA-02-5678", baseTime.Add(30*time.Minute))
	require.NoError(t, err)
	_, err = ledger.CreateActive(1, "Alice", "555-0101", "KA-01-1234", baseTime)
	require.NoError(t, err)
	_, err = ledger.CreateActive(3, "Carol", "555-0303", "KA-03-9999", baseTime.Add(time.Hour))
	require.NoError(t, err)
	_, err = ledger.Finalize(1, baseTime.Add(2*time.Hour), 20)
	require.NoError(t, err)

	token, err := auth.Login("admin", "hunter2")
	require.NoError(t, err)

	entries, err := svc.List(token)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Ascending by start time, completed and active mixed.
	assert.Equal(t, []int{1, 2, 3}, []int{entries[0].SlotNumber, entries[1].SlotNumber, entries[2].SlotNumber})
	assert.Equal(t, "completed", entries[0].Status)
	require.NotNil(t, entries[0].EndTime)
	require.NotNil(t, entries[0].Amount)
	assert.Equal(t, 20, *entries[0].Amount)

	assert.Equal(t, "active", entries[1].Status)
	assert.Nil(t, entries[1].EndTime)
	assert.Nil(t, entries[1].Amount)
}
