package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/learntrackhq/learntrack/internal/app"
	"github.com/learntrackhq/learntrack/internal/config"
	"github.com/learntrackhq/learntrack/internal/logger"
	"github.com/learntrackhq/learntrack/internal/scheduler"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.IsDevelopment(), cfg.AppEnv, cfg.SentryDSN)
	defer logger.Flush()

	app, err := app.New(cfg)
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		panic(err)
	}
	defer func() {
		closeErr := app.Close()
		if closeErr != nil {
			slog.Error("failed to close app", "error", closeErr)
		}
	}()

	if !app.RemindersEnabled() {
		// Nothing to schedule without mail. Stay up so the deployment is
		// observable rather than crash-looping, but say why loudly.
		slog.Warn("reminders disabled, no mail transport configured",
			"provider", cfg.MailProvider, "env", cfg.AppEnv)
		waitForShutdown()
		return
	}

	sched := scheduler.New(app.ReminderService, cfg.ReminderPollInterval)
	err = sched.Start()
	if err != nil {
		slog.Error("failed to start scheduler", "error", err)
		panic(err)
	}
	defer sched.Stop()

	slog.Info("worker running",
		"env", cfg.AppEnv,
		"transport", app.Mailer.Name(),
		"default_reminder_time", cfg.ReminderTime,
		"poll_interval", cfg.ReminderPollInterval)

	waitForShutdown()
	slog.Info("worker shutting down")
}

func waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
}
