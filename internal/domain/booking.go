package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is the only mutable entity in the system. Pricing is a snapshot
// frozen at creation time — a historical record of what was charged,
// independent of later rule changes. Bookings are created only through the
// orchestrator's commit path and afterwards either soft-cancelled or
// hard-removed by an administrative delete.
type Booking struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	UserName  string            `json:"user_name"`
	CourtID   string            `json:"court_id"`
	Date      string            `json:"date"` // YYYY-MM-DD
	StartTime int               `json:"start_time"`
	EndTime   int               `json:"end_time"` // half-open [StartTime, EndTime)
	CoachID   string            `json:"coach_id,omitempty"`
	Resources []ResourceRequest `json:"resources"`
	Pricing   PricingBreakdown  `json:"pricing"`
	Status    BookingStatus     `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
}

// BookingRequest is a candidate reservation before validation and pricing.
type BookingRequest struct {
	UserID    string            `json:"user_id"`
	UserName  string            `json:"user_name"`
	CourtID   string            `json:"court_id"`
	Date      string            `json:"date"`
	StartTime int               `json:"start_time"`
	EndTime   int               `json:"end_time"`
	CoachID   string            `json:"coach_id,omitempty"`
	Resources []ResourceRequest `json:"resources"`
}

// Overlaps reports whether the booking intersects the half-open hour window
// [start, end) on the given date. Touching intervals do not overlap.
func (b *Booking) Overlaps(date string, start, end int) bool {
	if b.Date != date {
		return false
	}
	return start < b.EndTime && end > b.StartTime
}

// ResourceQuantity returns how many units of the item this booking holds.
func (b *Booking) ResourceQuantity(itemID string) int {
	for _, r := range b.Resources {
		if r.ItemID == itemID {
			return r.Quantity
		}
	}
	return 0
}
