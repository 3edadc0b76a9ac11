package ledger

import (
	"sync"

	"courtmaster-backend/internal/domain"
)

// Ledger is the authoritative in-memory set of booking records. It is owned
// by the booking orchestrator; availability checks and price previews only
// read from it. The mutex exists so that the orchestrator's re-check and
// write happen with no observable intermediate state even with concurrent
// HTTP handlers.
type Ledger struct {
	mu       sync.RWMutex
	bookings []domain.Booking
}

func New() *Ledger {
	return &Ledger{}
}

// Replace swaps the entire booking set. Used for startup hydration from the
// durability collaborator.
func (l *Ledger) Replace(bookings []domain.Booking) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.bookings = make([]domain.Booking, len(bookings))
	copy(l.bookings, bookings)
}

// Snapshot returns a copy of all booking records, cancelled included.
func (l *Ledger) Snapshot() []domain.Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]domain.Booking, len(l.bookings))
	copy(out, l.bookings)
	return out
}

// Overlapping returns the non-cancelled bookings on date whose hour windows
// intersect the half-open interval [start, end). Touching intervals (one
// ending at 18, another starting at 18) do not overlap.
func (l *Ledger) Overlapping(date string, start, end int) []domain.Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.overlappingLocked(date, start, end)
}

func (l *Ledger) overlappingLocked(date string, start, end int) []domain.Booking {
	var out []domain.Booking
	for _, b := range l.bookings {
		if b.Status == domain.BookingStatusCancelled {
			continue
		}
		if b.Overlaps(date, start, end) {
			out = append(out, b)
		}
	}
	return out
}

// Get returns the booking with the given ID.
func (l *Ledger) Get(id string) (domain.Booking, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, b := range l.bookings {
		if b.ID == id {
			return b, true
		}
	}
	return domain.Booking{}, false
}

// Append commits a new booking record.
func (l *Ledger) Append(b domain.Booking) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.bookings = append(l.bookings, b)
}

// Cancel soft-deletes a booking, preserving it for audit and reporting.
// Returns false if no confirmed booking with the ID exists.
func (l *Ledger) Cancel(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.bookings {
		if l.bookings[i].ID == id && l.bookings[i].Status != domain.BookingStatusCancelled {
			l.bookings[i].Status = domain.BookingStatusCancelled
			return true
		}
	}
	return false
}

// Remove hard-deletes a booking record. Returns whether a record was found.
func (l *Ledger) Remove(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.bookings {
		if l.bookings[i].ID == id {
			l.bookings = append(l.bookings[:i], l.bookings[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveIf hard-deletes every booking the predicate selects and returns how
// many were removed.
func (l *Ledger) RemoveIf(keep func(domain.Booking) bool) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	kept := l.bookings[:0]
	removed := 0
	for _, b := range l.bookings {
		if keep(b) {
			kept = append(kept, b)
		} else {
			removed++
		}
	}
	l.bookings = kept
	return removed
}

// Reset clears the entire ledger. Irreversible.
func (l *Ledger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.bookings = nil
}

// Len reports the number of records, cancelled included.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.bookings)
}

// WithLock runs fn while holding the write lock. The orchestrator uses it to
// make availability re-verification atomic with the subsequent append: the
// view passed to fn answers overlap queries against the locked state, and
// any bookings fn returns are committed before the lock is released.
func (l *Ledger) WithLock(fn func(view View) (*domain.Booking, error)) (*domain.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	b, err := fn(lockedView{l})
	if err != nil {
		return nil, err
	}
	if b != nil {
		l.bookings = append(l.bookings, *b)
	}
	return b, nil
}

// View is a read-only window onto the ledger used by the availability
// checker.
type View interface {
	Overlapping(date string, start, end int) []domain.Booking
}

type lockedView struct{ l *Ledger }

func (v lockedView) Overlapping(date string, start, end int) []domain.Booking {
	return v.l.overlappingLocked(date, start, end)
}
