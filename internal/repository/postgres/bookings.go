package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"courtmaster-backend/internal/domain"
	"courtmaster-backend/internal/logger"
	"courtmaster-backend/internal/repository"
)

type bookingStore struct {
	db *sql.DB
}

// NewBookingStore returns a PostgreSQL-backed booking snapshot store.
func NewBookingStore(db *sql.DB) repository.BookingStore {
	return &bookingStore{db: db}
}

func (s *bookingStore) LoadAll(ctx context.Context) ([]domain.Booking, error) {
	query := `SELECT id, user_id, user_name, court_id, date, start_time, end_time, coach_id, resources, pricing, status, created_on
	          FROM bookings ORDER BY created_on`
	logger.DatabaseCall("LoadAll", query)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		var resources, pricing []byte
		if err := rows.Scan(&b.ID, &b.UserID, &b.UserName, &b.CourtID, &b.Date, &b.StartTime, &b.EndTime, &b.CoachID, &resources, &pricing, &b.Status, &b.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan booking row: %w", err)
		}
		if err := json.Unmarshal(resources, &b.Resources); err != nil {
			return nil, fmt.Errorf("corrupt resources column for booking %s: %w", b.ID, err)
		}
		// Pricing is a frozen snapshot; it is stored and read verbatim,
		// never recomputed from live rules.
		if err := json.Unmarshal(pricing, &b.Pricing); err != nil {
			return nil, fmt.Errorf("corrupt pricing column for booking %s: %w", b.ID, err)
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (s *bookingStore) SaveAll(ctx context.Context, bookings []domain.Booking) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM bookings`); err != nil {
		return fmt.Errorf("failed to clear bookings: %w", err)
	}

	insert := `INSERT INTO bookings (id, user_id, user_name, court_id, date, start_time, end_time, coach_id, resources, pricing, status, created_on)
	           VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	for _, b := range bookings {
		resources, err := json.Marshal(b.Resources)
		if err != nil {
			return fmt.Errorf("failed to encode resources for booking %s: %w", b.ID, err)
		}
		pricing, err := json.Marshal(b.Pricing)
		if err != nil {
			return fmt.Errorf("failed to encode pricing for booking %s: %w", b.ID, err)
		}
		if _, err := tx.ExecContext(ctx, insert, b.ID, b.UserID, b.UserName, b.CourtID, b.Date, b.StartTime, b.EndTime, b.CoachID, resources, pricing, b.Status, b.Timestamp); err != nil {
			return fmt.Errorf("failed to insert booking %s: %w", b.ID, err)
		}
	}

	err = tx.Commit()
	logger.DatabaseResult("SaveAll", int64(len(bookings)), err)
	if err != nil {
		return fmt.Errorf("failed to commit bookings snapshot: %w", err)
	}
	return nil
}
