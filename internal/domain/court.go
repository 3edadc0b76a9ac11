package domain

type CourtType string

const (
	CourtTypeIndoor  CourtType = "indoor"
	CourtTypeOutdoor CourtType = "outdoor"
)

// Court is a bookable playing surface. Catalog entities are loaded once at
// startup and never mutated at runtime.
type Court struct {
	ID               string    `json:"id" yaml:"id"`
	Name             string    `json:"name" yaml:"name"`
	Type             CourtType `json:"type" yaml:"type"`
	BasePricePerHour float64   `json:"base_price_per_hour" yaml:"base_price_per_hour"`
}
