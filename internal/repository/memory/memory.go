package memory

import (
	"context"
	"sync"

	"courtmaster-backend/internal/domain"
	"courtmaster-backend/internal/repository"
)

type bookingStore struct {
	mu       sync.Mutex
	bookings []domain.Booking
}

// NewBookingStore returns an in-process booking store for development mode
// and tests. Nothing survives a restart.
func NewBookingStore() repository.BookingStore {
	return &bookingStore{}
}

func (s *bookingStore) LoadAll(ctx context.Context) ([]domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out, nil
}

func (s *bookingStore) SaveAll(ctx context.Context, bookings []domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = make([]domain.Booking, len(bookings))
	copy(s.bookings, bookings)
	return nil
}
