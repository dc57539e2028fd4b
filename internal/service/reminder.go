package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/learntrackhq/learntrack/internal/mailer"
	"github.com/learntrackhq/learntrack/internal/model"
	"github.com/learntrackhq/learntrack/internal/repository"
)

var (
	ErrNoEmailOnFile = errors.New("profile has no email address")
)

// CycleReport summarizes one reminder cycle. Eligible is always the sum
// of Skipped, Sent and Failed; Checked counts the profiles whose streak
// state was actually evaluated this cycle.
type CycleReport struct {
	Eligible int
	Checked  int
	Skipped  int
	Sent     int
	Failed   int
}

// ReminderService decides who gets nudged and pushes the mail out. One
// cycle scans every opted-in profile; per-user guards make repeated
// cycles within a day cheap no-ops, so the caller can poll coarsely.
type ReminderService struct {
	profiles    repository.ProfileRepository
	streaks     *StreakService
	composer    *mailer.Composer
	transport   mailer.Transport
	defaultTime string
	sendTimeout time.Duration
	nowFn       func() time.Time

	mu       sync.Mutex
	lastSent map[string]time.Time
}

func NewReminderService(
	profiles repository.ProfileRepository,
	streaks *StreakService,
	composer *mailer.Composer,
	transport mailer.Transport,
	defaultTime string,
	sendTimeout time.Duration,
) *ReminderService {
	return &ReminderService{
		profiles:    profiles,
		streaks:     streaks,
		composer:    composer,
		transport:   transport,
		defaultTime: defaultTime,
		sendTimeout: sendTimeout,
		nowFn:       time.Now,
		lastSent:    make(map[string]time.Time),
	}
}

// RunCycle runs one reminder pass at the given instant. Each opted-in
// profile is handled independently: a failure for one user is logged and
// counted, never propagated, so the rest of the batch still goes out.
// A user is reminded at most once per calendar day, with no retry and no
// replay of days missed while the process was down.
func (s *ReminderService) RunCycle(ctx context.Context, now time.Time) CycleReport {
	var report CycleReport

	profiles, err := s.profiles.Remindable()
	if err != nil {
		slog.Error("reminder cycle could not load profiles", "error", err)
		return report
	}
	report.Eligible = len(profiles)

	for _, profile := range profiles {
		select {
		case <-ctx.Done():
			slog.Warn("reminder cycle interrupted", "error", ctx.Err())
			return report
		default:
		}

		if !s.due(profile, now) || s.alreadyHandled(profile.Username, now) {
			report.Skipped++
			continue
		}

		report.Checked++

		status, err := s.streaks.StatusAt(profile.Username, now)
		if err != nil {
			slog.Error("reminder skipped, streak lookup failed",
				"username", profile.Username, "error", err)
			report.Failed++
			continue
		}

		if status.HasLoggedToday {
			s.markHandled(profile.Username, now)
			report.Skipped++
			continue
		}

		// Marked even when the send fails: a timed-out send may still
		// have been delivered, and a duplicate is worse than a miss.
		err = s.dispatch(ctx, profile, status.CurrentStreak)
		s.markHandled(profile.Username, now)
		if err != nil {
			slog.Error("reminder dispatch failed",
				"username", profile.Username,
				"transport", s.transport.Name(),
				"error", err)
			report.Failed++
			continue
		}

		slog.Info("reminder sent",
			"username", profile.Username,
			"streak", status.CurrentStreak)
		report.Sent++
	}

	return report
}

// SendTest composes and sends a reminder right now, regardless of
// enablement, logged-today state or the once-per-day guard. Unlike the
// cycle it reports the transport error to the caller: it exists to
// verify mail configuration end to end.
func (s *ReminderService) SendTest(ctx context.Context, username string) error {
	username = strings.TrimSpace(username)

	profile, err := s.profiles.ByUsername(username)
	if err != nil {
		return err
	}
	if profile.Email == "" {
		return ErrNoEmailOnFile
	}

	status, err := s.streaks.StatusAt(username, s.nowFn())
	if err != nil {
		return err
	}

	err = s.dispatch(ctx, profile, status.CurrentStreak)
	if err != nil {
		return fmt.Errorf("failed to send test reminder: %w", err)
	}

	slog.Info("test reminder sent", "username", username, "transport", s.transport.Name())
	return nil
}

// due reports whether now's wall clock has reached the profile's
// reminder time, falling back to the configured default when the profile
// has none.
func (s *ReminderService) due(profile *model.ReminderProfile, now time.Time) bool {
	target := profile.ReminderTime
	if target == "" {
		target = s.defaultTime
	}

	tod, err := time.Parse("15:04", target)
	if err != nil {
		tod, err = time.Parse("15:04", s.defaultTime)
		if err != nil {
			return true
		}
	}

	return now.Hour()*60+now.Minute() >= tod.Hour()*60+tod.Minute()
}

// alreadyHandled reports whether this user was already dealt with today,
// whether that was a dispatch, a dispatch failure or a logged-today skip.
func (s *ReminderService) alreadyHandled(username string, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	day, ok := s.lastSent[username]
	return ok && day.Equal(model.DateOnly(now))
}

func (s *ReminderService) markHandled(username string, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSent[username] = model.DateOnly(now)
}

func (s *ReminderService) dispatch(ctx context.Context, profile *model.ReminderProfile, streakLen int) error {
	msg, err := s.composer.Reminder(model.DisplayName(profile.Username), streakLen)
	if err != nil {
		return err
	}
	msg.To = profile.Email

	if s.sendTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.sendTimeout)
		defer cancel()
	}

	return s.transport.Send(ctx, msg)
}
