package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learntrackhq/learntrack/internal/model"
	"github.com/learntrackhq/learntrack/internal/repository"
)

func TestEntryServiceAdd(t *testing.T) {
	repo := &fakeEntryRepo{}
	svc := NewEntryService(repo)
	svc.nowFn = func() time.Time { return cycleNow }

	entry, err := svc.Add("  ada  ", cycleNow, 2.5, "", "  read two chapters  ")
	require.NoError(t, err)

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "ada", entry.Username)
	assert.Equal(t, model.DateOnly(cycleNow), entry.OccurredOn)
	assert.Equal(t, 2.5, entry.Hours)
	assert.Equal(t, model.DefaultCategory, entry.Category)
	assert.Equal(t, "read two chapters", entry.Notes)
	require.Len(t, repo.entries, 1)
}

func TestEntryServiceAddValidation(t *testing.T) {
	svc := NewEntryService(&fakeEntryRepo{})
	svc.nowFn = func() time.Time { return cycleNow }

	cases := []struct {
		name       string
		username   string
		occurredOn time.Time
		hours      float64
	}{
		{"short username", "x", cycleNow, 1},
		{"blank username", "   ", cycleNow, 1},
		{"zero hours", "ada", cycleNow, 0},
		{"negative hours", "ada", cycleNow, -2},
		{"too many hours", "ada", cycleNow, 24.5},
		{"future date", "ada", cycleNow.AddDate(0, 0, 1), 1},
		{"zero date", "ada", time.Time{}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Add(tc.username, tc.occurredOn, tc.hours, "", "")
			assert.Error(t, err)
		})
	}
}

func TestEntryServiceDeleteIsOwnershipScoped(t *testing.T) {
	repo := &fakeEntryRepo{entries: []*model.Entry{entryOn("ada", cycleNow)}}
	svc := NewEntryService(repo)
	entryID := repo.entries[0].ID

	err := svc.Delete("grace", entryID)
	assert.ErrorIs(t, err, repository.ErrEntryNotFound)

	err = svc.Delete("ada", entryID)
	assert.NoError(t, err)
	assert.Empty(t, repo.entries)
}
