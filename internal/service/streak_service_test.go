package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learntrackhq/learntrack/internal/model"
)

func TestStreakServiceStatus(t *testing.T) {
	entries := &fakeEntryRepo{entries: []*model.Entry{
		entryOn("ada", cycleNow),
		entryOn("ada", cycleNow.AddDate(0, 0, -1)),
	}}
	svc := NewStreakService(entries)
	svc.nowFn = func() time.Time { return cycleNow }

	logged, err := svc.HasLoggedToday("ada")
	require.NoError(t, err)
	assert.True(t, logged)

	n, err := svc.Streak("ada")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// Unknown users have empty histories, not errors.
	n, err = svc.Streak("ghost")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestStreakServiceRepositoryError(t *testing.T) {
	svc := NewStreakService(&fakeEntryRepo{err: errors.New("boom")})

	_, err := svc.HasLoggedToday("ada")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load logged days")
}
