package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/learntrackhq/learntrack/internal/model"
	"github.com/learntrackhq/learntrack/internal/repository"
	"github.com/learntrackhq/learntrack/internal/validation"
)

var (
	ErrInvalidTargetHours = errors.New("target hours must be above 0 and fit in a week")
)

// GoalService manages weekly hour targets per category and reports
// progress against them.
type GoalService struct {
	repo    repository.GoalRepository
	entries repository.EntryRepository
	nowFn   func() time.Time
}

func NewGoalService(repo repository.GoalRepository, entries repository.EntryRepository) *GoalService {
	return &GoalService{
		repo:    repo,
		entries: entries,
		nowFn:   time.Now,
	}
}

// Set creates or replaces the weekly hour target for one category.
func (s *GoalService) Set(username, category string, targetHours float64) (*model.Goal, error) {
	err := validation.ValidateUsername(username)
	if err != nil {
		return nil, err
	}

	if targetHours <= 0 || targetHours > 168 {
		return nil, ErrInvalidTargetHours
	}

	category = strings.TrimSpace(category)
	if category == "" {
		category = model.DefaultCategory
	}

	now := s.nowFn()
	goal := &model.Goal{
		ID:          uuid.New().String(),
		Username:    strings.TrimSpace(username),
		Category:    category,
		TargetHours: targetHours,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.repo.Upsert(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to save goal: %w", err)
	}

	return goal, nil
}

func (s *GoalService) ForUser(username string) ([]*model.Goal, error) {
	return s.repo.ForUser(strings.TrimSpace(username))
}

func (s *GoalService) Delete(username, category string) error {
	return s.repo.Delete(strings.TrimSpace(username), strings.TrimSpace(category))
}

// Progress reports this week's logged hours against each of the user's
// targets. Percent is capped at 100; overshooting a goal is still done.
func (s *GoalService) Progress(username string) ([]model.GoalProgress, error) {
	username = strings.TrimSpace(username)

	goals, err := s.repo.ForUser(username)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}
	if len(goals) == 0 {
		return nil, nil
	}

	weekStart := mondayOf(s.nowFn())
	entries, err := s.entries.ForUserInRange(username, weekStart, weekStart.AddDate(0, 0, 7))
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	byCategory := make(map[string]float64)
	for _, entry := range entries {
		byCategory[entry.Category] += entry.Hours
	}

	progress := make([]model.GoalProgress, 0, len(goals))
	for _, goal := range goals {
		logged := byCategory[goal.Category]

		percent := int(logged / goal.TargetHours * 100)
		if percent > 100 {
			percent = 100
		}

		progress = append(progress, model.GoalProgress{
			Category:    goal.Category,
			TargetHours: goal.TargetHours,
			LoggedHours: round1(logged),
			Percent:     percent,
		})
	}

	return progress, nil
}
