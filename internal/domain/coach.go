package domain

// Coach teaches at most one session at a time, regardless of court.
type Coach struct {
	ID         string  `json:"id" yaml:"id"`
	Name       string  `json:"name" yaml:"name"`
	Specialty  string  `json:"specialty" yaml:"specialty"`
	HourlyRate float64 `json:"hourly_rate" yaml:"hourly_rate"`
}
