package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	t.Run("Valid date", func(t *testing.T) {
		d, err := ParseDate("2024-01-15")
		assert.NoError(t, err)
		assert.Equal(t, 2024, d.Year())
		assert.Equal(t, 1, int(d.Month()))
		assert.Equal(t, 15, d.Day())
		assert.Equal(t, "UTC", d.Location().String())
	})

	t.Run("Invalid format", func(t *testing.T) {
		_, err := ParseDate("2024/01/15")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid date format")
	})

	t.Run("Invalid day", func(t *testing.T) {
		_, err := ParseDate("2024-02-30")
		assert.Error(t, err)
	})
}

func TestWeekday(t *testing.T) {
	tests := []struct {
		date     string
		expected int
	}{
		{"2024-01-07", 0}, // Sunday
		{"2024-01-08", 1}, // Monday
		{"2024-01-12", 5}, // Friday
		{"2024-01-06", 6}, // Saturday
		{"2024-02-29", 4}, // leap day, Thursday
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			day, err := Weekday(tt.date)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, day)
		})
	}
}
