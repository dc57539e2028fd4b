package validation

import (
	"errors"
	"time"
)

// ValidateReminderTime checks a wall-clock "HH:MM" string. An empty value
// is allowed: it means the server-wide default applies.
func ValidateReminderTime(value string) error {
	if value == "" {
		return nil
	}

	_, err := time.Parse("15:04", value)
	if err != nil {
		return errors.New("reminder time must be HH:MM, e.g. 20:00")
	}
	return nil
}
