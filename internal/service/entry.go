package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/learntrackhq/learntrack/internal/model"
	"github.com/learntrackhq/learntrack/internal/repository"
	"github.com/learntrackhq/learntrack/internal/validation"
)

type EntryService struct {
	repo  repository.EntryRepository
	nowFn func() time.Time
}

func NewEntryService(repo repository.EntryRepository) *EntryService {
	return &EntryService{
		repo:  repo,
		nowFn: time.Now,
	}
}

// Add records one learning session. Only the calendar day of occurredOn
// is kept; a blank category falls back to "General".
func (s *EntryService) Add(username string, occurredOn time.Time, hours float64, category, notes string) (*model.Entry, error) {
	err := validation.ValidateUsername(username)
	if err != nil {
		return nil, err
	}

	err = validation.ValidateHours(hours)
	if err != nil {
		return nil, err
	}

	err = validation.ValidateOccurredOn(occurredOn, s.nowFn())
	if err != nil {
		return nil, err
	}

	category = strings.TrimSpace(category)
	if category == "" {
		category = model.DefaultCategory
	}

	entry := &model.Entry{
		ID:         uuid.New().String(),
		Username:   strings.TrimSpace(username),
		OccurredOn: model.DateOnly(occurredOn),
		Hours:      hours,
		Category:   category,
		Notes:      strings.TrimSpace(notes),
		CreatedAt:  s.nowFn(),
	}

	err = s.repo.Create(entry)
	if err != nil {
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}

	return entry, nil
}

func (s *EntryService) ForUser(username string) ([]*model.Entry, error) {
	return s.repo.ForUser(strings.TrimSpace(username))
}

func (s *EntryService) All() ([]*model.Entry, error) {
	return s.repo.All()
}

// Delete removes an entry, scoped to its owner. Deleting someone else's
// entry reports ErrEntryNotFound rather than leaking its existence.
func (s *EntryService) Delete(username, entryID string) error {
	return s.repo.Delete(strings.TrimSpace(username), entryID)
}
