package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/PrajwalVN/parking-booking/internal/db"
	apperrors "github.com/PrajwalVN/parking-booking/internal/errors"
)

// BookingLedger owns booking records: at most one active booking per
// slot, append-only history for completed ones.
type BookingLedger interface {
	// CreateActive fails with ErrAlreadyActive if the slot already has
	// an active booking.
	CreateActive(slotNumber int, name, phone, vehicleNumber string, startTime time.Time) (*db.Booking, error)
	// GetActive fails with ErrNoActiveBooking if none exists.
	GetActive(slotNumber int) (*db.Booking, error)
	// Finalize completes the active booking, setting end time and
	// amount exactly once. Fails with ErrNoActiveBooking if none.
	Finalize(slotNumber int, endTime time.Time, amount int) (*db.Booking, error)
	// DiscardActive removes the active booking without finalizing it.
	// No-op when there is none.
	DiscardActive(slotNumber int) error
	// History returns bookings for one slot, or all slots when
	// slotNumber is 0, ordered by start time ascending. Includes both
	// active and completed records.
	History(slotNumber int) ([]db.Booking, error)
	// ActiveSlotNumbers lists slots that currently hold an active
	// booking. Used by the reconciliation sweep.
	ActiveSlotNumbers() ([]int, error)
}

const uniqueViolation = "23505"

type PostgresBookingLedger struct {
	DB *sql.DB
}

func NewPostgresBookingLedger(conn *sql.DB) *PostgresBookingLedger {
	return &PostgresBookingLedger{DB: conn}
}

func (r *PostgresBookingLedger) CreateActive(slotNumber int, name, phone, vehicleNumber string, startTime time.Time) (*db.Booking, error) {
	b := &db.Booking{
		SlotNumber:    slotNumber,
		Name:          name,
		Phone:         phone,
		VehicleNumber: vehicleNumber,
		StartTime:     startTime,
		Status:        db.BookingActive,
	}
	err := r.DB.QueryRow(
		`INSERT INTO bookings (slot_number, name, phone, vehicle_number, start_time, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		b.SlotNumber, b.Name, b.Phone, b.VehicleNumber, b.StartTime, b.Status,
	).Scan(&b.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, apperrors.ErrAlreadyActive
		}
		return nil, fmt.Errorf("error creating booking: %w", err)
	}
	return b, nil
}

func (r *PostgresBookingLedger) GetActive(slotNumber int) (*db.Booking, error) {
	row := r.DB.QueryRow(
		`SELECT id, slot_number, name, phone, vehicle_number, start_time, end_time, amount, status
		 FROM bookings WHERE slot_number = $1 AND status = $2`,
		slotNumber, db.BookingActive,
	)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNoActiveBooking
		}
		return nil, fmt.Errorf("error querying active booking: %w", err)
	}
	return b, nil
}

func (r *PostgresBookingLedger) Finalize(slotNumber int, endTime time.Time, amount int) (*db.Booking, error) {
	row := r.DB.QueryRow(
		`UPDATE bookings SET end_time = $1, amount = $2, status = $3
		 WHERE slot_number = $4 AND status = $5
		 RETURNING id, slot_number, name, phone, vehicle_number, start_time, end_time, amount, status`,
		endTime, amount, db.BookingCompleted, slotNumber, db.BookingActive,
	)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNoActiveBooking
		}
		return nil, fmt.Errorf("error finalizing booking: %w", err)
	}
	return b, nil
}

func (r *PostgresBookingLedger) DiscardActive(slotNumber int) error {
	_, err := r.DB.Exec(
		`DELETE FROM bookings WHERE slot_number = $1 AND status = $2`,
		slotNumber, db.BookingActive,
	)
	if err != nil {
		return fmt.Errorf("error discarding active booking: %w", err)
	}
	return nil
}

func (r *PostgresBookingLedger) History(slotNumber int) ([]db.Booking, error) {
	query := `SELECT id, slot_number, name, phone, vehicle_number, start_time, end_time, amount, status
	          FROM bookings`
	args := []interface{}{}
	if slotNumber > 0 {
		query += ` WHERE slot_number = $1`
		args = append(args, slotNumber)
	}
	query += ` ORDER BY start_time, id`

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying booking history: %w", err)
	}
	defer rows.Close()

	var bookings []db.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning booking: %w", err)
		}
		bookings = append(bookings, *b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating booking rows: %w", err)
	}
	return bookings, nil
}

func (r *PostgresBookingLedger) ActiveSlotNumbers() ([]int, error) {
	rows, err := r.DB.Query(
		`SELECT slot_number FROM bookings WHERE status = $1 ORDER BY slot_number`,
		db.BookingActive,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying active slot numbers: %w", err)
	}
	defer rows.Close()

	var numbers []int
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("error scanning slot number: %w", err)
		}
		numbers = append(numbers, n)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating rows: %w", err)
	}
	return numbers, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*db.Booking, error) {
	var b db.Booking
	var endTime sql.NullTime
	var amount sql.NullInt64
	err := row.Scan(&b.ID, &b.SlotNumber, &b.Name, &b.Phone, &b.VehicleNumber,
		&b.StartTime, &endTime, &amount, &b.Status)
	if err != nil {
		return nil, err
	}
	if endTime.Valid {
		t := endTime.Time
		b.EndTime = &t
	}
	if amount.Valid {
		a := int(amount.Int64)
		b.Amount = &a
	}
	return &b, nil
}
