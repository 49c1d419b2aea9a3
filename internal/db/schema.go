package db

import (
	"database/sql"
	"fmt"
)

// EnsureSchema creates the slots and bookings tables if they do not
// exist. The partial unique index backs the one-active-booking-per-slot
// invariant at the store level.
func EnsureSchema(conn *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS slots (
			number INTEGER PRIMARY KEY,
			status TEXT NOT NULL DEFAULT 'empty'
		)`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id SERIAL PRIMARY KEY,
			slot_number INTEGER NOT NULL REFERENCES slots(number),
			name TEXT NOT NULL,
			phone TEXT NOT NULL,
			vehicle_number TEXT NOT NULL,
			start_time TIMESTAMPTZ NOT NULL,
			end_time TIMESTAMPTZ,
			amount INTEGER,
			status TEXT NOT NULL DEFAULT 'active'
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS bookings_one_active_per_slot
			ON bookings (slot_number) WHERE status = 'active'`,
		`CREATE INDEX IF NOT EXISTS bookings_start_time ON bookings (start_time)`,
	}
	for _, stmt := range stmts {
		if _, err := conn.Exec(stmt); err != nil {
			return fmt.Errorf("error ensuring schema: %w", err)
		}
	}
	return nil
}
