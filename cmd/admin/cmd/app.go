// Package cmd implements the admin subcommands. Each command boots the
// same application wiring the worker uses, runs one operation against
// the services, and prints a plain-text result.
package cmd

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/learntrackhq/learntrack/internal/app"
	"github.com/learntrackhq/learntrack/internal/config"
	"github.com/learntrackhq/learntrack/internal/db"
	"github.com/learntrackhq/learntrack/internal/logger"
)

func withApp(fn func(a *app.App) error) error {
	cfg := config.Load()
	logger.Init(cfg.IsDevelopment(), cfg.AppEnv, cfg.SentryDSN)

	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	defer a.Close()

	return fn(a)
}

// withDB connects without building the app, so schema commands can run
// against a database whose migrations are not current.
func withDB(fn func(database *sqlx.DB, driver string) error) error {
	cfg := config.Load()
	logger.Init(cfg.IsDevelopment(), cfg.AppEnv, cfg.SentryDSN)

	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close(database)

	return fn(database, cfg.DBDriver)
}
