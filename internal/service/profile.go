package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/learntrackhq/learntrack/internal/model"
	"github.com/learntrackhq/learntrack/internal/repository"
	"github.com/learntrackhq/learntrack/internal/validation"
)

// ProfileService manages reminder settings keyed by learner name.
type ProfileService struct {
	profileRepo repository.ProfileRepository
}

func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
	}
}

func (s *ProfileService) Get(username string) (*model.ReminderProfile, error) {
	return s.profileRepo.ByUsername(strings.TrimSpace(username))
}

// Ensure returns the user's profile, creating a default one on first
// sight. Reminders start disabled until the user opts in.
func (s *ProfileService) Ensure(username string) (*model.ReminderProfile, error) {
	err := validation.ValidateUsername(username)
	if err != nil {
		return nil, err
	}
	username = strings.TrimSpace(username)

	profile, err := s.profileRepo.ByUsername(username)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, err
	}

	profile = &model.ReminderProfile{
		Username: username,
	}

	err = s.profileRepo.Create(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return profile, nil
}

// UpdateSettings replaces the user's reminder settings. An empty email
// is allowed while reminders are off; enabling reminders requires one.
// An empty reminder time means the server-wide default applies.
func (s *ProfileService) UpdateSettings(username, email string, enabled bool, reminderTime string) (*model.ReminderProfile, error) {
	email = strings.TrimSpace(email)
	reminderTime = strings.TrimSpace(reminderTime)

	if email != "" || enabled {
		err := validation.ValidateEmail(email)
		if err != nil {
			return nil, err
		}
	}

	err := validation.ValidateReminderTime(reminderTime)
	if err != nil {
		return nil, err
	}

	profile, err := s.Ensure(username)
	if err != nil {
		return nil, err
	}

	profile.Email = email
	profile.ReminderEnabled = enabled
	profile.ReminderTime = reminderTime

	err = s.profileRepo.Update(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return profile, nil
}
