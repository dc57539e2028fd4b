package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	assert.NoError(t, ValidateUsername("jo"))
	assert.NoError(t, ValidateUsername("  maria  "))
	assert.Error(t, ValidateUsername(""))
	assert.Error(t, ValidateUsername(" "))
	assert.Error(t, ValidateUsername("x"))
}

func TestValidateHours(t *testing.T) {
	assert.NoError(t, ValidateHours(0.5))
	assert.NoError(t, ValidateHours(24))
	assert.Error(t, ValidateHours(0))
	assert.Error(t, ValidateHours(-1))
	assert.Error(t, ValidateHours(24.5))
}

func TestValidateOccurredOn(t *testing.T) {
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, time.Local)

	assert.NoError(t, ValidateOccurredOn(now.AddDate(0, 0, -3), now))
	assert.Error(t, ValidateOccurredOn(time.Time{}, now))
	assert.Error(t, ValidateOccurredOn(now.AddDate(0, 0, 1), now))

	// Later today is still today, not the future.
	laterToday := time.Date(2025, 3, 15, 23, 0, 0, 0, time.Local)
	assert.NoError(t, ValidateOccurredOn(laterToday, now))
}

func TestValidateReminderTime(t *testing.T) {
	assert.NoError(t, ValidateReminderTime(""))
	assert.NoError(t, ValidateReminderTime("20:00"))
	assert.NoError(t, ValidateReminderTime("07:30"))
	assert.Error(t, ValidateReminderTime("25:00"))
	assert.Error(t, ValidateReminderTime("8pm"))
	assert.Error(t, ValidateReminderTime("20:61"))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("learner@example.com"))
	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("not-an-address"))
}
