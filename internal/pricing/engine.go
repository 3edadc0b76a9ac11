package pricing

import (
	"strconv"

	"courtmaster-backend/internal/catalog"
	"courtmaster-backend/internal/domain"
	"courtmaster-backend/internal/utils"
)

// Engine computes itemized price breakdowns for candidate reservations.
// Rules are evaluated in two classes with a fixed composition order: flat
// additions adjust the hourly rate first, then multipliers scale the running
// seat price, each class in catalog-declared order. The reported base price
// is always the unmodified court rate times duration so that the sum of
// modifier amounts reconciles exactly with the seat price.
type Engine struct {
	catalog *catalog.Catalog
}

func NewEngine(cat *catalog.Catalog) *Engine {
	return &Engine{catalog: cat}
}

// Quote prices a reservation of the court over [start, end) on date, with an
// optional coach and equipment. An unknown court fails with NotFoundError;
// unknown coach or item IDs contribute zero cost.
func (e *Engine) Quote(courtID, date string, start, end int, coachID string, resources []domain.ResourceRequest) (domain.PricingBreakdown, error) {
	court, ok := e.catalog.Court(courtID)
	if !ok {
		return domain.PricingBreakdown{}, &domain.NotFoundError{Kind: "court", ID: courtID}
	}

	weekday, err := utils.Weekday(date)
	if err != nil {
		return domain.PricingBreakdown{}, err
	}

	duration := float64(end - start)
	runningRate := court.BasePricePerHour
	var modifiers []domain.PriceModifier

	// Flat-add class: each applicable rule raises the hourly rate.
	for _, rule := range e.catalog.Rules() {
		if rule.IsMultiplier || !ruleApplies(rule, weekday, start, end) {
			continue
		}
		runningRate += rule.Modifier
		modifiers = append(modifiers, domain.PriceModifier{
			Name:   rule.Name,
			Amount: rule.Modifier * duration,
		})
	}

	seatPrice := runningRate * duration

	// Multiplier class: each applicable rule scales the seat price produced
	// by everything before it.
	for _, rule := range e.catalog.Rules() {
		if !rule.IsMultiplier || !ruleApplies(rule, weekday, start, end) {
			continue
		}
		oldPrice := seatPrice
		seatPrice *= rule.Modifier
		modifiers = append(modifiers, domain.PriceModifier{
			Name:   rule.Name + " x" + strconv.FormatFloat(rule.Modifier, 'f', -1, 64),
			Amount: seatPrice - oldPrice,
		})
	}

	var coachFee float64
	if coachID != "" {
		if coach, ok := e.catalog.Coach(coachID); ok {
			coachFee = coach.HourlyRate * duration
		}
	}

	var resourceFee float64
	for _, res := range resources {
		if item, ok := e.catalog.Item(res.ItemID); ok {
			resourceFee += item.PricePerSession * float64(res.Quantity)
		}
	}

	return domain.PricingBreakdown{
		BasePrice:   court.BasePricePerHour * duration,
		Modifiers:   modifiers,
		CoachFee:    coachFee,
		ResourceFee: resourceFee,
		Total:       seatPrice + coachFee + resourceFee,
	}, nil
}

// ruleApplies reports whether every set condition field of the rule matches
// the booking's weekday and half-open hour window.
func ruleApplies(rule domain.PricingRule, weekday, start, end int) bool {
	cond := rule.Condition

	if len(cond.Days) > 0 {
		found := false
		for _, d := range cond.Days {
			if d == weekday {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if cond.StartHour != nil || cond.EndHour != nil {
		windowStart, windowEnd := 0, 24
		if cond.StartHour != nil {
			windowStart = *cond.StartHour
		}
		if cond.EndHour != nil {
			windowEnd = *cond.EndHour
		}
		// Same half-open overlap test the availability checker uses.
		if !(start < windowEnd && end > windowStart) {
			return false
		}
	}

	return true
}
