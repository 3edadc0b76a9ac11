package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"courtmaster-backend/internal/availability"
	"courtmaster-backend/internal/catalog"
	"courtmaster-backend/internal/domain"
	"courtmaster-backend/internal/ledger"
	"courtmaster-backend/internal/logger"
	"courtmaster-backend/internal/pricing"
	"courtmaster-backend/internal/repository"
	"courtmaster-backend/internal/utils"
)

// Hours is the bookable window of the venue; slots are one hour long and the
// last slot starts at CloseHour-1.
type Hours struct {
	OpenHour  int
	CloseHour int
}

type bookingService struct {
	catalog *catalog.Catalog
	ledger  *ledger.Ledger
	checker *availability.Checker
	engine  *pricing.Engine
	store   repository.BookingStore
	email   EmailService
	hours   Hours
}

func NewBookingService(
	cat *catalog.Catalog,
	led *ledger.Ledger,
	store repository.BookingStore,
	email EmailService,
	hours Hours,
) BookingService {
	return &bookingService{
		catalog: cat,
		ledger:  led,
		checker: availability.NewChecker(cat),
		engine:  pricing.NewEngine(cat),
		store:   store,
		email:   email,
		hours:   hours,
	}
}

// Hydrate loads the persisted booking snapshot into the ledger. Corrupt or
// missing data is tolerated: the ledger starts empty and the condition is
// logged, matching the integrity check of the reference store.
func Hydrate(ctx context.Context, led *ledger.Ledger, store repository.BookingStore) {
	bookings, err := store.LoadAll(ctx)
	if err != nil {
		logger.Warn("Failed to load booking snapshot, starting with empty ledger", "error", err)
		led.Reset()
		return
	}
	led.Replace(bookings)
	logger.Info("Hydrated booking ledger", "count", len(bookings))
}

func (s *bookingService) CheckAvailability(ctx context.Context, req availability.Request) (availability.Result, error) {
	if err := validateWindow(req.Date, req.StartTime, req.EndTime); err != nil {
		return availability.Result{}, err
	}
	return s.checker.Check(s.ledger, req), nil
}

func (s *bookingService) QuotePrice(ctx context.Context, courtID, date string, start, end int, coachID string, resources []domain.ResourceRequest) (domain.PricingBreakdown, error) {
	if err := validateWindow(date, start, end); err != nil {
		return domain.PricingBreakdown{}, err
	}
	return s.engine.Quote(courtID, date, start, end, coachID, resources)
}

func (s *bookingService) CreateBooking(ctx context.Context, req domain.BookingRequest) (*CreateResult, error) {
	if err := validateWindow(req.Date, req.StartTime, req.EndTime); err != nil {
		return nil, err
	}
	if req.UserName == "" {
		return nil, &domain.ValidationError{Msg: "user name is required"}
	}
	for _, r := range req.Resources {
		if r.Quantity <= 0 {
			return nil, &domain.ValidationError{Msg: fmt.Sprintf("resource %s has non-positive quantity", r.ItemID)}
		}
	}
	// Unknown courts fail loudly before anything is committed.
	court, ok := s.catalog.Court(req.CourtID)
	if !ok {
		return nil, &domain.NotFoundError{Kind: "court", ID: req.CourtID}
	}

	// Re-verify availability against the current ledger state and append in
	// one critical section. Any earlier speculative checks by the caller are
	// advisory only; this is the authoritative gate.
	booking, err := s.ledger.WithLock(func(view ledger.View) (*domain.Booking, error) {
		result := s.checker.Check(view, availability.Request{
			Date:      req.Date,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			CourtID:   req.CourtID,
			CoachID:   req.CoachID,
			Resources: req.Resources,
		})
		if !result.Available {
			return nil, &domain.AvailabilityError{Reason: result.Reason}
		}

		breakdown, err := s.engine.Quote(req.CourtID, req.Date, req.StartTime, req.EndTime, req.CoachID, req.Resources)
		if err != nil {
			return nil, err
		}

		return &domain.Booking{
			ID:        uuid.NewString(),
			UserID:    req.UserID,
			UserName:  req.UserName,
			CourtID:   req.CourtID,
			Date:      req.Date,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			CoachID:   req.CoachID,
			Resources: req.Resources,
			Pricing:   breakdown,
			Status:    domain.BookingStatusConfirmed,
			Timestamp: time.Now().UTC(),
		}, nil
	})
	if err != nil {
		return nil, err
	}

	result := &CreateResult{Booking: booking}
	if err := s.persist(ctx); err != nil {
		// The in-memory commit stands; the caller is told durability is
		// lagging rather than losing the booking.
		logger.Warn("Booking committed but snapshot save failed", "booking_id", booking.ID, "error", err)
		result.PersistWarning = "booking confirmed, but saving to durable storage failed; it may not survive a restart"
	}

	if s.email != nil {
		if err := s.email.SendBookingConfirmation(ctx, booking, court.Name); err != nil {
			logger.Warn("Failed to send booking confirmation email", "booking_id", booking.ID, "error", err)
		}
	}

	logger.Info("Booking created",
		"booking_id", booking.ID,
		"court_id", booking.CourtID,
		"date", booking.Date,
		"start", booking.StartTime,
		"end", booking.EndTime,
		"total", booking.Pricing.Total,
	)
	return result, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, id string) bool {
	booking, found := s.ledger.Get(id)
	if !found || !s.ledger.Cancel(id) {
		return false
	}
	if err := s.persist(ctx); err != nil {
		logger.Warn("Booking cancelled but snapshot save failed", "booking_id", id, "error", err)
	}
	if s.email != nil {
		courtName := booking.CourtID
		if court, ok := s.catalog.Court(booking.CourtID); ok {
			courtName = court.Name
		}
		if err := s.email.SendBookingCancellation(ctx, &booking, courtName); err != nil {
			logger.Warn("Failed to send booking cancellation email", "booking_id", id, "error", err)
		}
	}
	logger.Info("Booking cancelled", "booking_id", id)
	return true
}

func (s *bookingService) DeleteBooking(ctx context.Context, id string) bool {
	if !s.ledger.Remove(id) {
		return false
	}
	if err := s.persist(ctx); err != nil {
		logger.Warn("Booking deleted but snapshot save failed", "booking_id", id, "error", err)
	}
	logger.Info("Booking deleted", "booking_id", id)
	return true
}

func (s *bookingService) Reset(ctx context.Context) {
	s.ledger.Reset()
	if err := s.persist(ctx); err != nil {
		logger.Warn("Ledger reset but snapshot save failed", "error", err)
	}
	logger.Info("Booking ledger reset")
}

func (s *bookingService) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	booking, found := s.ledger.Get(id)
	if !found {
		return nil, &domain.NotFoundError{Kind: "booking", ID: id}
	}
	return &booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context) []domain.Booking {
	return s.ledger.Snapshot()
}

// SlotGrid answers the wizard's speculative per-slot checks in one call.
// With a court ID it reports that court's availability per hour; without one
// a slot is available when any court in the catalog is free.
func (s *bookingService) SlotGrid(ctx context.Context, date, courtID string) ([]SlotStatus, error) {
	if _, err := utils.ParseDate(date); err != nil {
		return nil, &domain.ValidationError{Msg: err.Error()}
	}
	if courtID != "" {
		if _, ok := s.catalog.Court(courtID); !ok {
			return nil, &domain.NotFoundError{Kind: "court", ID: courtID}
		}
	}

	slots := make([]SlotStatus, 0, s.hours.CloseHour-s.hours.OpenHour)
	for hour := s.hours.OpenHour; hour < s.hours.CloseHour; hour++ {
		slots = append(slots, SlotStatus{Hour: hour, Available: s.slotFree(date, hour, courtID)})
	}
	return slots, nil
}

func (s *bookingService) slotFree(date string, hour int, courtID string) bool {
	if courtID != "" {
		result := s.checker.Check(s.ledger, availability.Request{
			Date: date, StartTime: hour, EndTime: hour + 1, CourtID: courtID,
		})
		return result.Available
	}
	for _, court := range s.catalog.Courts() {
		result := s.checker.Check(s.ledger, availability.Request{
			Date: date, StartTime: hour, EndTime: hour + 1, CourtID: court.ID,
		})
		if result.Available {
			return true
		}
	}
	return false
}

func (s *bookingService) Stats(ctx context.Context) VenueStats {
	stats := VenueStats{Courts: len(s.catalog.Courts())}
	for _, b := range s.ledger.Snapshot() {
		stats.TotalBookings++
		if b.Status == domain.BookingStatusCancelled {
			stats.CancelledBookings++
			continue
		}
		stats.ConfirmedBookings++
		stats.TotalRevenue += b.Pricing.Total
	}
	return stats
}

func (s *bookingService) persist(ctx context.Context) error {
	return s.store.SaveAll(ctx, s.ledger.Snapshot())
}

func validateWindow(date string, start, end int) error {
	if _, err := utils.ParseDate(date); err != nil {
		return &domain.ValidationError{Msg: err.Error()}
	}
	if start < 0 || end > 24 {
		return &domain.ValidationError{Msg: fmt.Sprintf("hours must lie within [0,24]: got [%d,%d)", start, end)}
	}
	if start >= end {
		return &domain.ValidationError{Msg: fmt.Sprintf("start time must be before end time: got [%d,%d)", start, end)}
	}
	return nil
}
