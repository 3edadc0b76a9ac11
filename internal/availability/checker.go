package availability

import (
	"fmt"

	"courtmaster-backend/internal/catalog"
	"courtmaster-backend/internal/domain"
	"courtmaster-backend/internal/ledger"
)

// Result is an availability verdict. Reason is set only when Available is
// false and names the first failing check: court, then coach, then
// resources.
type Result struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// Request is a candidate reservation window with optional resource demands.
// CourtID and CoachID may be empty, in which case the corresponding check is
// skipped.
type Request struct {
	Date      string
	StartTime int
	EndTime   int
	CourtID   string
	CoachID   string
	Resources []domain.ResourceRequest
}

// Checker decides whether a candidate reservation can be granted given the
// current ledger state and the finite stocks in the catalog. Checks are
// advisory and side-effect-free; callers may run them speculatively any
// number of times.
type Checker struct {
	catalog *catalog.Catalog
}

func NewChecker(cat *catalog.Catalog) *Checker {
	return &Checker{catalog: cat}
}

// Check runs the court, coach and stock checks in order against the given
// ledger view and reports the first conflict found.
func (c *Checker) Check(view ledger.View, req Request) Result {
	overlapping := view.Overlapping(req.Date, req.StartTime, req.EndTime)

	if req.CourtID != "" {
		for _, b := range overlapping {
			if b.CourtID == req.CourtID {
				return Result{Available: false, Reason: "Court is already booked for this time."}
			}
		}
	}

	if req.CoachID != "" {
		for _, b := range overlapping {
			if b.CoachID == req.CoachID {
				return Result{Available: false, Reason: "Coach is unavailable for this time."}
			}
		}
	}

	for _, res := range req.Resources {
		item, ok := c.catalog.Item(res.ItemID)
		if !ok {
			// Unknown items are a deliberate no-op, not an error.
			continue
		}

		committed := 0
		for _, b := range overlapping {
			committed += b.ResourceQuantity(res.ItemID)
		}
		if committed+res.Quantity > item.TotalStock {
			return Result{
				Available: false,
				Reason:    fmt.Sprintf("Not enough %s available (Only %d left).", item.Name, item.TotalStock-committed),
			}
		}
	}

	return Result{Available: true}
}
