package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"courtmaster-backend/internal/domain"
)

// Catalog holds the static venue configuration: courts, coaches, inventory
// and pricing rules. It is loaded once at startup and read-only thereafter,
// so no locking is needed.
type Catalog struct {
	courts    []domain.Court
	coaches   []domain.Coach
	inventory []domain.InventoryItem
	rules     []domain.PricingRule

	courtsByID  map[string]domain.Court
	coachesByID map[string]domain.Coach
	itemsByID   map[string]domain.InventoryItem
}

type catalogFile struct {
	Courts    []domain.Court         `yaml:"courts"`
	Coaches   []domain.Coach         `yaml:"coaches"`
	Inventory []domain.InventoryItem `yaml:"inventory"`
	Rules     []domain.PricingRule   `yaml:"pricing_rules"`
}

// Load reads a venue catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	return New(file.Courts, file.Coaches, file.Inventory, file.Rules)
}

// New builds a catalog from explicit entity lists.
func New(courts []domain.Court, coaches []domain.Coach, inventory []domain.InventoryItem, rules []domain.PricingRule) (*Catalog, error) {
	c := &Catalog{
		courts:      courts,
		coaches:     coaches,
		inventory:   inventory,
		rules:       rules,
		courtsByID:  make(map[string]domain.Court, len(courts)),
		coachesByID: make(map[string]domain.Coach, len(coaches)),
		itemsByID:   make(map[string]domain.InventoryItem, len(inventory)),
	}

	for _, court := range courts {
		if court.ID == "" {
			return nil, fmt.Errorf("court with empty id")
		}
		if _, dup := c.courtsByID[court.ID]; dup {
			return nil, fmt.Errorf("duplicate court id: %s", court.ID)
		}
		if court.BasePricePerHour < 0 {
			return nil, fmt.Errorf("court %s has negative base price", court.ID)
		}
		c.courtsByID[court.ID] = court
	}
	for _, coach := range coaches {
		if _, dup := c.coachesByID[coach.ID]; dup {
			return nil, fmt.Errorf("duplicate coach id: %s", coach.ID)
		}
		c.coachesByID[coach.ID] = coach
	}
	for _, item := range inventory {
		if _, dup := c.itemsByID[item.ID]; dup {
			return nil, fmt.Errorf("duplicate inventory id: %s", item.ID)
		}
		if item.TotalStock < 0 {
			return nil, fmt.Errorf("inventory item %s has negative stock", item.ID)
		}
		c.itemsByID[item.ID] = item
	}

	return c, nil
}

// Default returns the reference venue configuration.
func Default() *Catalog {
	peakStart, peakEnd := 18, 21

	c, _ := New(
		[]domain.Court{
			{ID: "c1", Name: "Court A (Premium Indoor)", Type: domain.CourtTypeIndoor, BasePricePerHour: 25},
			{ID: "c2", Name: "Court B (Standard Indoor)", Type: domain.CourtTypeIndoor, BasePricePerHour: 20},
			{ID: "c3", Name: "Court C (Outdoor)", Type: domain.CourtTypeOutdoor, BasePricePerHour: 15},
		},
		[]domain.Coach{
			{ID: "ch1", Name: "Mike Ross", Specialty: "Advanced Tactics", HourlyRate: 30},
			{ID: "ch2", Name: "Sarah Lee", Specialty: "Beginners & Kids", HourlyRate: 25},
		},
		[]domain.InventoryItem{
			{ID: "inv1", Name: "Pro Yonex Racket", TotalStock: 10, PricePerSession: 5},
			{ID: "inv2", Name: "Court Shoes (Pair)", TotalStock: 5, PricePerSession: 8},
			{ID: "inv3", Name: "Shuttlecock Tube", TotalStock: 20, PricePerSession: 3},
		},
		[]domain.PricingRule{
			{
				ID:        "pr1",
				Name:      "Weekend Surcharge",
				Type:      domain.RuleTypeWeekend,
				Modifier:  5,
				Condition: domain.RuleCondition{Days: []int{0, 6}},
			},
			{
				ID:           "pr2",
				Name:         "Peak Hour (6PM-9PM)",
				Type:         domain.RuleTypePeakHour,
				Modifier:     1.25,
				IsMultiplier: true,
				Condition:    domain.RuleCondition{StartHour: &peakStart, EndHour: &peakEnd},
			},
		},
	)
	return c
}

// Court looks up a court by ID.
func (c *Catalog) Court(id string) (domain.Court, bool) {
	court, ok := c.courtsByID[id]
	return court, ok
}

// Coach looks up a coach by ID.
func (c *Catalog) Coach(id string) (domain.Coach, bool) {
	coach, ok := c.coachesByID[id]
	return coach, ok
}

// Item looks up an inventory item by ID.
func (c *Catalog) Item(id string) (domain.InventoryItem, bool) {
	item, ok := c.itemsByID[id]
	return item, ok
}

// Courts returns a copy of the court list.
func (c *Catalog) Courts() []domain.Court {
	out := make([]domain.Court, len(c.courts))
	copy(out, c.courts)
	return out
}

// Coaches returns a copy of the coach list.
func (c *Catalog) Coaches() []domain.Coach {
	out := make([]domain.Coach, len(c.coaches))
	copy(out, c.coaches)
	return out
}

// Inventory returns a copy of the inventory list.
func (c *Catalog) Inventory() []domain.InventoryItem {
	out := make([]domain.InventoryItem, len(c.inventory))
	copy(out, c.inventory)
	return out
}

// Rules returns the pricing rules in catalog-declared order.
func (c *Catalog) Rules() []domain.PricingRule {
	out := make([]domain.PricingRule, len(c.rules))
	copy(out, c.rules)
	return out
}
