package service

import (
	"context"

	"courtmaster-backend/internal/availability"
	"courtmaster-backend/internal/domain"
)

// SlotStatus is the availability verdict for a single one-hour slot in the
// booking wizard's time grid.
type SlotStatus struct {
	Hour      int  `json:"hour"`
	Available bool `json:"available"`
}

// VenueStats are the admin dashboard numbers. Revenue sums the frozen
// pricing totals of confirmed bookings; cancelled records are kept for audit
// but do not count.
type VenueStats struct {
	TotalBookings     int     `json:"total_bookings"`
	ConfirmedBookings int     `json:"confirmed_bookings"`
	CancelledBookings int     `json:"cancelled_bookings"`
	TotalRevenue      float64 `json:"total_revenue"`
	Courts            int     `json:"courts"`
}

// CreateResult is a committed booking plus an optional non-fatal persistence
// warning. When the durability collaborator fails to save, the in-memory
// commit still stands for the rest of the session and the warning says so.
type CreateResult struct {
	Booking        *domain.Booking `json:"booking"`
	PersistWarning string          `json:"persist_warning,omitempty"`
}

// BookingService is the transactional entry point of the availability and
// pricing core. Reads are advisory, side-effect-free and unbounded; writes
// re-verify availability atomically with the ledger append.
type BookingService interface {
	CheckAvailability(ctx context.Context, req availability.Request) (availability.Result, error)
	QuotePrice(ctx context.Context, courtID, date string, start, end int, coachID string, resources []domain.ResourceRequest) (domain.PricingBreakdown, error)
	CreateBooking(ctx context.Context, req domain.BookingRequest) (*CreateResult, error)
	CancelBooking(ctx context.Context, id string) bool
	DeleteBooking(ctx context.Context, id string) bool
	Reset(ctx context.Context)
	GetBooking(ctx context.Context, id string) (*domain.Booking, error)
	ListBookings(ctx context.Context) []domain.Booking
	SlotGrid(ctx context.Context, date, courtID string) ([]SlotStatus, error)
	Stats(ctx context.Context) VenueStats
}

// EmailService sends booking lifecycle notifications. Delivery is best
// effort; a failed send never fails the booking.
type EmailService interface {
	SendBookingConfirmation(ctx context.Context, booking *domain.Booking, courtName string) error
	SendBookingCancellation(ctx context.Context, booking *domain.Booking, courtName string) error
}
