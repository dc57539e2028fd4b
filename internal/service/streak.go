package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/learntrackhq/learntrack/internal/repository"
	"github.com/learntrackhq/learntrack/internal/streak"
)

// StreakService joins stored session days with the streak engine.
type StreakService struct {
	entries repository.EntryRepository
	nowFn   func() time.Time
}

func NewStreakService(entries repository.EntryRepository) *StreakService {
	return &StreakService{
		entries: entries,
		nowFn:   time.Now,
	}
}

// HasLoggedToday reports whether the user logged a session today.
func (s *StreakService) HasLoggedToday(username string) (bool, error) {
	result, err := s.Status(username)
	if err != nil {
		return false, err
	}
	return result.HasLoggedToday, nil
}

// Streak returns the user's current consecutive-day streak.
func (s *StreakService) Streak(username string) (int, error) {
	result, err := s.Status(username)
	if err != nil {
		return 0, err
	}
	return result.CurrentStreak, nil
}

// Status computes both streak facts against the service clock.
func (s *StreakService) Status(username string) (streak.Result, error) {
	return s.StatusAt(username, s.nowFn())
}

// StatusAt computes both streak facts at a caller-supplied reference
// time. The reminder cycle uses this so every user in one cycle is
// judged against the same instant.
func (s *StreakService) StatusAt(username string, now time.Time) (streak.Result, error) {
	days, err := s.entries.LoggedDays(strings.TrimSpace(username))
	if err != nil {
		return streak.Result{}, fmt.Errorf("failed to load logged days: %w", err)
	}

	return streak.Evaluate(days, now), nil
}
