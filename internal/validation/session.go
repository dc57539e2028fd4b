package validation

import (
	"errors"
	"time"
)

// ValidateHours checks a session length. Zero and negative values are
// meaningless; anything above 24 cannot fit in a day.
func ValidateHours(hours float64) error {
	if hours <= 0 {
		return errors.New("hours must be greater than 0")
	}
	if hours > 24 {
		return errors.New("hours must be at most 24")
	}
	return nil
}

// ValidateOccurredOn rejects future session dates. The comparison is on
// calendar days, each read in its value's own location, so logging
// earlier today is fine.
func ValidateOccurredOn(occurredOn, now time.Time) error {
	if occurredOn.IsZero() {
		return errors.New("date is required")
	}

	if day(occurredOn).After(day(now)) {
		return errors.New("date cannot be in the future")
	}
	return nil
}

func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
