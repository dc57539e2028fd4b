// Package scheduler drives the daily reminder pipeline off a coarse
// minutely poll.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/learntrackhq/learntrack/internal/service"
)

// CycleRunner runs one reminder pass. Implemented by the reminder
// service.
type CycleRunner interface {
	RunCycle(ctx context.Context, now time.Time) service.CycleReport
}

// Scheduler polls the reminder service on a fixed interval. The service
// does its own per-user gating, so polling more often than strictly
// needed is harmless; singleton mode keeps a slow cycle from overlapping
// the next poll.
type Scheduler struct {
	scheduler *gocron.Scheduler
	runner    CycleRunner
	interval  time.Duration
	nowFn     func() time.Time
}

func New(runner CycleRunner, interval time.Duration) *Scheduler {
	s := gocron.NewScheduler(time.Local)
	s.SingletonModeAll()

	return &Scheduler{
		scheduler: s,
		runner:    runner,
		interval:  interval,
		nowFn:     time.Now,
	}
}

// Start begins the poll loop in the background.
func (s *Scheduler) Start() error {
	_, err := s.scheduler.Every(s.interval).Do(s.poll)
	if err != nil {
		return fmt.Errorf("failed to schedule reminder poll: %w", err)
	}

	s.scheduler.StartAsync()
	slog.Info("reminder scheduler started", "poll_interval", s.interval)
	return nil
}

// Stop halts polling. A cycle already in flight finishes on its own.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
	slog.Info("reminder scheduler stopped")
}

func (s *Scheduler) poll() {
	report := s.runner.RunCycle(context.Background(), s.nowFn())

	if report.Sent > 0 || report.Failed > 0 {
		slog.Info("reminder cycle complete",
			"eligible", report.Eligible,
			"checked", report.Checked,
			"skipped", report.Skipped,
			"sent", report.Sent,
			"failed", report.Failed)
		return
	}

	slog.Debug("reminder cycle complete",
		"eligible", report.Eligible,
		"checked", report.Checked,
		"skipped", report.Skipped)
}
