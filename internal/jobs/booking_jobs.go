package jobs

import (
	"context"
	"time"

	"courtmaster-backend/internal/domain"
	"courtmaster-backend/internal/logger"
	"courtmaster-backend/internal/utils"
)

// PurgeCancelledBookings hard-removes cancelled bookings whose date lies
// further back than the configured retention window. Cancelled records stay
// in the ledger for audit until then.
func (jr *JobRunner) PurgeCancelledBookings() {
	jr.runWithRecovery("PurgeCancelledBookings", func() {
		retention := jr.config.Retention.CancelledBookingDays
		cutoff := time.Now().UTC().AddDate(0, 0, -retention)

		removed := jr.ledger.RemoveIf(func(b domain.Booking) bool {
			if b.Status != domain.BookingStatusCancelled {
				return true
			}
			date, err := utils.ParseDate(b.Date)
			if err != nil {
				// Malformed data is kept for a human to look at rather
				// than silently destroyed.
				logger.Warn("Cancelled booking has unparseable date, keeping", "booking_id", b.ID, "date", b.Date)
				return true
			}
			return !date.Before(cutoff)
		})

		if removed > 0 {
			if err := jr.store.SaveAll(context.Background(), jr.ledger.Snapshot()); err != nil {
				logger.Error("Purged bookings but snapshot save failed", "error", err)
				return
			}
		}
		logger.Info("Purged expired cancelled bookings", "removed", removed, "retention_days", retention)
	})
}

// DailyBookingReport logs the previous day's confirmed booking count and
// revenue from the frozen pricing snapshots.
func (jr *JobRunner) DailyBookingReport() {
	jr.runWithRecovery("DailyBookingReport", func() {
		yesterday := time.Now().UTC().AddDate(0, 0, -1).Format(utils.DateLayout)

		count := 0
		revenue := 0.0
		for _, b := range jr.ledger.Snapshot() {
			if b.Date != yesterday || b.Status != domain.BookingStatusConfirmed {
				continue
			}
			count++
			revenue += b.Pricing.Total
		}

		logger.Info("Daily booking report", "date", yesterday, "confirmed_bookings", count, "revenue", revenue)
	})
}
