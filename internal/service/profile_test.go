package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learntrackhq/learntrack/internal/repository"
)

func TestProfileServiceEnsure(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo)

	first, err := svc.Ensure("ada")
	require.NoError(t, err)
	assert.Equal(t, "ada", first.Username)
	assert.False(t, first.ReminderEnabled)
	assert.Empty(t, first.Email)

	_, err = svc.UpdateSettings("ada", "ada@example.com", true, "21:15")
	require.NoError(t, err)

	// Ensure returns the stored profile, not a fresh default.
	again, err := svc.Ensure("ada")
	require.NoError(t, err)
	assert.True(t, again.ReminderEnabled)
	assert.Equal(t, "ada@example.com", again.Email)
	assert.Equal(t, "21:15", again.ReminderTime)

	_, err = svc.Ensure("x")
	assert.Error(t, err)
}

func TestProfileServiceUpdateSettingsValidation(t *testing.T) {
	svc := NewProfileService(newFakeProfileRepo())

	_, err := svc.UpdateSettings("ada", "not-an-address", true, "")
	assert.Error(t, err)

	_, err = svc.UpdateSettings("ada", "", true, "")
	assert.Error(t, err, "enabling reminders without an address")

	_, err = svc.UpdateSettings("ada", "ada@example.com", true, "9pm")
	assert.Error(t, err)

	// Keeping reminders off with no email is fine.
	profile, err := svc.UpdateSettings("ada", "", false, "")
	require.NoError(t, err)
	assert.False(t, profile.Remindable())
}

func TestProfileServiceGet(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo)

	_, err := svc.Get("ghost")
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)

	_, err = svc.Ensure("ada")
	require.NoError(t, err)

	profile, err := svc.Get("ada")
	require.NoError(t, err)
	assert.Equal(t, "ada", profile.Username)
}
