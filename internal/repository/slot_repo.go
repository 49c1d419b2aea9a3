package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/PrajwalVN/parking-booking/internal/db"
	apperrors "github.com/PrajwalVN/parking-booking/internal/errors"
)

// SlotStore holds the fixed slot inventory. TrySetStatus is the sole
// serialization point per slot number; every status change in the
// system goes through it.
type SlotStore interface {
	GetAll() ([]db.Slot, error)
	GetStatus(number int) (string, error)
	// TrySetStatus atomically moves the slot from expected to next.
	// Returns ErrConflict without mutating when the current status is
	// not expected, ErrSlotNotFound for an unknown number.
	TrySetStatus(number int, expected, next string) error
	// ForceStatus sets the status unconditionally. Used by reset only.
	ForceStatus(number int, next string) error
	// Seed provisions slots 1..count, leaving existing rows untouched.
	Seed(count int) error
}

type PostgresSlotStore struct {
	DB *sql.DB
}

func NewPostgresSlotStore(conn *sql.DB) *PostgresSlotStore {
	return &PostgresSlotStore{DB: conn}
}

func (r *PostgresSlotStore) GetAll() ([]db.Slot, error) {
	rows, err := r.DB.Query(`SELECT number, status FROM slots ORDER BY number`)
	if err != nil {
		return nil, fmt.Errorf("error querying slots: %w", err)
	}
	defer rows.Close()

	var slots []db.Slot
	for rows.Next() {
		var s db.Slot
		if err := rows.Scan(&s.Number, &s.Status); err != nil {
			return nil, fmt.Errorf("error scanning slot: %w", err)
		}
		slots = append(slots, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating slot rows: %w", err)
	}
	return slots, nil
}

func (r *PostgresSlotStore) GetStatus(number int) (string, error) {
	var status string
	err := r.DB.QueryRow(`SELECT status FROM slots WHERE number = $1`, number).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", apperrors.ErrSlotNotFound
		}
		return "", fmt.Errorf("error querying slot status: %w", err)
	}
	return status, nil
}

func (r *PostgresSlotStore) TrySetStatus(number int, expected, next string) error {
	res, err := r.DB.Exec(
		`UPDATE slots SET status = $1 WHERE number = $2 AND status = $3`,
		next, number, expected,
	)
	if err != nil {
		return fmt.Errorf("error updating slot status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading rows affected: %w", err)
	}
	if affected == 0 {
		// Either the slot does not exist or someone else won the race.
		if _, err := r.GetStatus(number); err != nil {
			return err
		}
		return apperrors.ErrConflict
	}
	return nil
}

func (r *PostgresSlotStore) ForceStatus(number int, next string) error {
	res, err := r.DB.Exec(`UPDATE slots SET status = $1 WHERE number = $2`, next, number)
	if err != nil {
		return fmt.Errorf("error forcing slot status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading rows affected: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrSlotNotFound
	}
	return nil
}

func (r *PostgresSlotStore) Seed(count int) error {
	for n := 1; n <= count; n++ {
		_, err := r.DB.Exec(
			`INSERT INTO slots (number, status) VALUES ($1, $2) ON CONFLICT (number) DO NOTHING`,
			n, db.SlotEmpty,
		)
		if err != nil {
			return fmt.Errorf("error seeding slot %d: %w", n, err)
		}
	}
	return nil
}
