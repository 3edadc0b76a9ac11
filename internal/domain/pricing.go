package domain

type RuleType string

const (
	RuleTypeWeekend  RuleType = "weekend"
	RuleTypePeakHour RuleType = "peak_hour"
	RuleTypeHoliday  RuleType = "holiday"
)

// RuleCondition narrows when a pricing rule applies. Days holds weekday
// indices (0=Sunday..6=Saturday); StartHour/EndHour is a half-open hour
// window. A nil field imposes no constraint.
type RuleCondition struct {
	Days      []int `json:"days,omitempty" yaml:"days,omitempty"`
	StartHour *int  `json:"start_hour,omitempty" yaml:"start_hour,omitempty"`
	EndHour   *int  `json:"end_hour,omitempty" yaml:"end_hour,omitempty"`
}

// PricingRule adjusts the seat price of a booking. Flat rules (IsMultiplier
// false) add Modifier to the hourly rate; multiplier rules scale the running
// seat price. Flat rules are always applied before multiplier rules, each
// class in catalog-declared order.
type PricingRule struct {
	ID           string        `json:"id" yaml:"id"`
	Name         string        `json:"name" yaml:"name"`
	Type         RuleType      `json:"type" yaml:"type"`
	Modifier     float64       `json:"modifier" yaml:"modifier"`
	IsMultiplier bool          `json:"is_multiplier" yaml:"is_multiplier"`
	Condition    RuleCondition `json:"condition" yaml:"condition"`
}

// PriceModifier is one applied-rule line in a breakdown.
type PriceModifier struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// PricingBreakdown itemizes what a booking costs. BasePrice is always the
// unmodified court rate times duration; BasePrice plus the modifier amounts
// equals the seat price, and Total = seatPrice + CoachFee + ResourceFee.
type PricingBreakdown struct {
	BasePrice   float64         `json:"base_price"`
	Modifiers   []PriceModifier `json:"modifiers"`
	CoachFee    float64         `json:"coach_fee"`
	ResourceFee float64         `json:"resource_fee"`
	Total       float64         `json:"total"`
}
