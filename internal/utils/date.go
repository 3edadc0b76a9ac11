package utils

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// ParseDate converts a yyyy-mm-dd formatted string into a calendar date.
// Dates are interpreted in UTC; weekday boundaries therefore shift at UTC
// midnight. This is the single timezone policy for the whole service.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, dateStr, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, expected yyyy-mm-dd: %w", err)
	}
	return t, nil
}

// Weekday returns the weekday index of a yyyy-mm-dd date, 0=Sunday through
// 6=Saturday.
func Weekday(dateStr string) (int, error) {
	t, err := ParseDate(dateStr)
	if err != nil {
		return 0, err
	}
	return int(t.Weekday()), nil
}
