package repository

import (
	"context"

	"courtmaster-backend/internal/domain"
)

// BookingStore is the durability collaborator for the reservation ledger.
// The core holds the authoritative snapshot in memory; the store replaces
// its whole contents after each mutation and hands them back at startup.
// Cross-session durability is the store's concern, not the core's.
type BookingStore interface {
	LoadAll(ctx context.Context) ([]domain.Booking, error)
	SaveAll(ctx context.Context, bookings []domain.Booking) error
}
