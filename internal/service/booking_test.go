package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"courtmaster-backend/internal/availability"
	"courtmaster-backend/internal/catalog"
	"courtmaster-backend/internal/domain"
	"courtmaster-backend/internal/ledger"
	"courtmaster-backend/internal/repository/memory"
)

// 2024-01-06 is a Saturday, 2024-01-08 a Monday.
const (
	saturday = "2024-01-06"
	monday   = "2024-01-08"
)

type mockEmailService struct {
	mock.Mock
}

func (m *mockEmailService) SendBookingConfirmation(ctx context.Context, booking *domain.Booking, courtName string) error {
	args := m.Called(ctx, booking, courtName)
	return args.Error(0)
}

func (m *mockEmailService) SendBookingCancellation(ctx context.Context, booking *domain.Booking, courtName string) error {
	args := m.Called(ctx, booking, courtName)
	return args.Error(0)
}

type failingStore struct{}

func (failingStore) LoadAll(ctx context.Context) ([]domain.Booking, error) {
	return nil, errors.New("connection refused")
}

func (failingStore) SaveAll(ctx context.Context, bookings []domain.Booking) error {
	return errors.New("connection refused")
}

func newTestService() BookingService {
	return NewBookingService(catalog.Default(), ledger.New(), memory.NewBookingStore(), nil, Hours{OpenHour: 8, CloseHour: 22})
}

func request(courtID, date string, start, end int) domain.BookingRequest {
	return domain.BookingRequest{
		UserID:    "u1",
		UserName:  "Alex",
		CourtID:   courtID,
		Date:      date,
		StartTime: start,
		EndTime:   end,
	}
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	result, err := svc.CreateBooking(ctx, request("c1", saturday, 18, 19))
	require.NoError(t, err)
	require.NotNil(t, result.Booking)

	booking := result.Booking
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
	assert.False(t, booking.Timestamp.IsZero())
	assert.InDelta(t, 37.5, booking.Pricing.Total, 1e-9)
	assert.Empty(t, result.PersistWarning)

	got, err := svc.GetBooking(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.ID, got.ID)
}

func TestCreateBookingConflicts(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.CreateBooking(ctx, request("c1", saturday, 10, 12))
	require.NoError(t, err)

	t.Run("Same court overlapping window is rejected", func(t *testing.T) {
		_, err := svc.CreateBooking(ctx, request("c1", saturday, 11, 13))
		require.Error(t, err)
		var ae *domain.AvailabilityError
		require.True(t, errors.As(err, &ae))
		assert.Equal(t, "Court is already booked for this time.", ae.Reason)
	})

	t.Run("Coach double-booking is rejected", func(t *testing.T) {
		first := request("c2", saturday, 14, 15)
		first.CoachID = "ch1"
		_, err := svc.CreateBooking(ctx, first)
		require.NoError(t, err)

		second := request("c3", saturday, 14, 15)
		second.CoachID = "ch1"
		_, err = svc.CreateBooking(ctx, second)
		require.Error(t, err)
		var ae *domain.AvailabilityError
		require.True(t, errors.As(err, &ae))
		assert.Equal(t, "Coach is unavailable for this time.", ae.Reason)
	})

	t.Run("Cancellation frees the window", func(t *testing.T) {
		blocked, err := svc.CreateBooking(ctx, request("c2", monday, 9, 10))
		require.NoError(t, err)
		_, err = svc.CreateBooking(ctx, request("c2", monday, 9, 10))
		require.Error(t, err)

		require.True(t, svc.CancelBooking(ctx, blocked.Booking.ID))
		_, err = svc.CreateBooking(ctx, request("c2", monday, 9, 10))
		assert.NoError(t, err)
	})
}

func TestCreateBookingStockConservation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	// Court shoes: total stock 5. Three overlapping bookings claim 2+2,
	// then a demand of 2 must fail with the exact remaining count.
	first := request("c1", monday, 10, 12)
	first.Resources = []domain.ResourceRequest{{ItemID: "inv2", Quantity: 2}}
	_, err := svc.CreateBooking(ctx, first)
	require.NoError(t, err)

	second := request("c2", monday, 11, 13)
	second.Resources = []domain.ResourceRequest{{ItemID: "inv2", Quantity: 2}}
	_, err = svc.CreateBooking(ctx, second)
	require.NoError(t, err)

	third := request("c3", monday, 11, 12)
	third.Resources = []domain.ResourceRequest{{ItemID: "inv2", Quantity: 2}}
	_, err = svc.CreateBooking(ctx, third)
	require.Error(t, err)
	var ae *domain.AvailabilityError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, "Not enough Court Shoes (Pair) available (Only 1 left).", ae.Reason)

	// Outside the contested window the full stock is back.
	fourth := request("c3", monday, 14, 15)
	fourth.Resources = []domain.ResourceRequest{{ItemID: "inv2", Quantity: 5}}
	_, err = svc.CreateBooking(ctx, fourth)
	assert.NoError(t, err)
}

func TestCreateBookingValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	cases := []struct {
		name string
		req  domain.BookingRequest
	}{
		{"Bad date format", request("c1", "01/08/2024", 10, 11)},
		{"Start after end", request("c1", monday, 12, 10)},
		{"Zero-length window", request("c1", monday, 10, 10)},
		{"Negative start", request("c1", monday, -1, 10)},
		{"End past midnight", request("c1", monday, 10, 25)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateBooking(ctx, tc.req)
			require.Error(t, err)
			var ve *domain.ValidationError
			assert.True(t, errors.As(err, &ve))
		})
	}

	t.Run("Missing user name", func(t *testing.T) {
		req := request("c1", monday, 10, 11)
		req.UserName = ""
		_, err := svc.CreateBooking(ctx, req)
		require.Error(t, err)
		var ve *domain.ValidationError
		assert.True(t, errors.As(err, &ve))
	})

	t.Run("Non-positive resource quantity", func(t *testing.T) {
		req := request("c1", monday, 10, 11)
		req.Resources = []domain.ResourceRequest{{ItemID: "inv1", Quantity: 0}}
		_, err := svc.CreateBooking(ctx, req)
		require.Error(t, err)
		var ve *domain.ValidationError
		assert.True(t, errors.As(err, &ve))
	})

	t.Run("Unknown court", func(t *testing.T) {
		_, err := svc.CreateBooking(ctx, request("no-such-court", monday, 10, 11))
		require.Error(t, err)
		var nfe *domain.NotFoundError
		require.True(t, errors.As(err, &nfe))
		assert.Equal(t, "court", nfe.Kind)
	})
}

func TestCreateBookingPersistWarning(t *testing.T) {
	ctx := context.Background()
	svc := NewBookingService(catalog.Default(), ledger.New(), failingStore{}, nil, Hours{OpenHour: 8, CloseHour: 22})

	result, err := svc.CreateBooking(ctx, request("c1", monday, 10, 11))
	require.NoError(t, err, "a snapshot save failure must not fail the booking")
	assert.NotEmpty(t, result.PersistWarning)

	// The in-memory commit stands.
	got, err := svc.GetBooking(ctx, result.Booking.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, got.Status)
}

func TestCreateBookingSendsConfirmationEmail(t *testing.T) {
	ctx := context.Background()
	email := new(mockEmailService)
	email.On("SendBookingConfirmation", mock.Anything, mock.Anything, "Court A (Premium Indoor)").Return(nil)

	svc := NewBookingService(catalog.Default(), ledger.New(), memory.NewBookingStore(), email, Hours{OpenHour: 8, CloseHour: 22})
	_, err := svc.CreateBooking(ctx, request("c1", monday, 10, 11))
	require.NoError(t, err)
	email.AssertExpectations(t)

	t.Run("Email failure does not fail the booking", func(t *testing.T) {
		broken := new(mockEmailService)
		broken.On("SendBookingConfirmation", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down"))

		svc := NewBookingService(catalog.Default(), ledger.New(), memory.NewBookingStore(), broken, Hours{OpenHour: 8, CloseHour: 22})
		_, err := svc.CreateBooking(ctx, request("c1", monday, 14, 15))
		assert.NoError(t, err)
	})
}

func TestCancelAndDeleteBooking(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	result, err := svc.CreateBooking(ctx, request("c1", monday, 10, 11))
	require.NoError(t, err)
	id := result.Booking.ID

	t.Run("Cancel keeps the record", func(t *testing.T) {
		assert.True(t, svc.CancelBooking(ctx, id))
		got, err := svc.GetBooking(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusCancelled, got.Status)
	})

	t.Run("Cancel unknown id", func(t *testing.T) {
		assert.False(t, svc.CancelBooking(ctx, "nope"))
	})

	t.Run("Delete removes the record", func(t *testing.T) {
		assert.True(t, svc.DeleteBooking(ctx, id))
		_, err := svc.GetBooking(ctx, id)
		require.Error(t, err)
		var nfe *domain.NotFoundError
		assert.True(t, errors.As(err, &nfe))
	})

	t.Run("Delete unknown id", func(t *testing.T) {
		assert.False(t, svc.DeleteBooking(ctx, id))
	})
}

func TestHydrate(t *testing.T) {
	ctx := context.Background()

	t.Run("Loads persisted snapshot", func(t *testing.T) {
		store := memory.NewBookingStore()
		require.NoError(t, store.SaveAll(ctx, []domain.Booking{
			{ID: "b1", CourtID: "c1", Date: monday, StartTime: 10, EndTime: 11, Status: domain.BookingStatusConfirmed},
		}))

		led := ledger.New()
		Hydrate(ctx, led, store)
		assert.Equal(t, 1, led.Len())
	})

	t.Run("Load failure starts empty", func(t *testing.T) {
		led := ledger.New()
		Hydrate(ctx, led, failingStore{})
		assert.Zero(t, led.Len())
	})
}

func TestSlotGrid(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	t.Run("Full day of open slots", func(t *testing.T) {
		slots, err := svc.SlotGrid(ctx, monday, "c1")
		require.NoError(t, err)
		require.Len(t, slots, 14)
		assert.Equal(t, 8, slots[0].Hour)
		assert.Equal(t, 21, slots[len(slots)-1].Hour)
		for _, s := range slots {
			assert.True(t, s.Available)
		}
	})

	t.Run("Booked hour goes unavailable for that court", func(t *testing.T) {
		_, err := svc.CreateBooking(ctx, request("c1", monday, 10, 12))
		require.NoError(t, err)

		slots, err := svc.SlotGrid(ctx, monday, "c1")
		require.NoError(t, err)
		byHour := make(map[int]bool, len(slots))
		for _, s := range slots {
			byHour[s.Hour] = s.Available
		}
		assert.False(t, byHour[10])
		assert.False(t, byHour[11])
		assert.True(t, byHour[9])
		assert.True(t, byHour[12])
	})

	t.Run("Any-court mode needs all courts booked", func(t *testing.T) {
		_, err := svc.CreateBooking(ctx, request("c2", monday, 10, 11))
		require.NoError(t, err)

		slots, err := svc.SlotGrid(ctx, monday, "")
		require.NoError(t, err)
		byHour := make(map[int]bool, len(slots))
		for _, s := range slots {
			byHour[s.Hour] = s.Available
		}
		assert.True(t, byHour[10], "c3 is still free")

		_, err = svc.CreateBooking(ctx, request("c3", monday, 10, 11))
		require.NoError(t, err)
		slots, err = svc.SlotGrid(ctx, monday, "")
		require.NoError(t, err)
		for _, s := range slots {
			if s.Hour == 10 {
				assert.False(t, s.Available)
			}
		}
	})

	t.Run("Invalid inputs", func(t *testing.T) {
		_, err := svc.SlotGrid(ctx, "not-a-date", "")
		require.Error(t, err)
		var ve *domain.ValidationError
		assert.True(t, errors.As(err, &ve))

		_, err = svc.SlotGrid(ctx, monday, "no-such-court")
		require.Error(t, err)
		var nfe *domain.NotFoundError
		assert.True(t, errors.As(err, &nfe))
	})
}

func TestStatsAndReset(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	first, err := svc.CreateBooking(ctx, request("c1", monday, 10, 11))
	require.NoError(t, err)
	_, err = svc.CreateBooking(ctx, request("c2", monday, 10, 11))
	require.NoError(t, err)
	require.True(t, svc.CancelBooking(ctx, first.Booking.ID))

	stats := svc.Stats(ctx)
	assert.Equal(t, 2, stats.TotalBookings)
	assert.Equal(t, 1, stats.ConfirmedBookings)
	assert.Equal(t, 1, stats.CancelledBookings)
	assert.Equal(t, 3, stats.Courts)
	assert.InDelta(t, 20.0, stats.TotalRevenue, 1e-9, "cancelled bookings do not count toward revenue")

	svc.Reset(ctx)
	stats = svc.Stats(ctx)
	assert.Zero(t, stats.TotalBookings)
	assert.Zero(t, stats.TotalRevenue)
	assert.Empty(t, svc.ListBookings(ctx))
}

func TestCheckAvailabilityAndQuote(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	t.Run("Speculative check is side-effect-free", func(t *testing.T) {
		res, err := svc.CheckAvailability(ctx, availability.Request{Date: monday, StartTime: 10, EndTime: 11, CourtID: "c1"})
		require.NoError(t, err)
		assert.True(t, res.Available)
		assert.Empty(t, svc.ListBookings(ctx))
	})

	t.Run("Quote matches the frozen price at create time", func(t *testing.T) {
		quote, err := svc.QuotePrice(ctx, "c1", saturday, 18, 19, "ch1", nil)
		require.NoError(t, err)

		req := request("c1", saturday, 18, 19)
		req.CoachID = "ch1"
		result, err := svc.CreateBooking(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, quote, result.Booking.Pricing)
	})

	t.Run("Window validation applies to reads too", func(t *testing.T) {
		_, err := svc.CheckAvailability(ctx, availability.Request{Date: monday, StartTime: 12, EndTime: 10, CourtID: "c1"})
		require.Error(t, err)
		_, err = svc.QuotePrice(ctx, "c1", monday, 12, 10, "", nil)
		require.Error(t, err)
	})
}
