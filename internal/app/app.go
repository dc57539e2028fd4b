package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/learntrackhq/learntrack/internal/config"
	"github.com/learntrackhq/learntrack/internal/db"
	"github.com/learntrackhq/learntrack/internal/mailer"
	"github.com/learntrackhq/learntrack/internal/repository"
	"github.com/learntrackhq/learntrack/internal/service"
)

type App struct {
	Cfg             *config.Config
	DB              *sqlx.DB
	EntryService    *service.EntryService
	StreakService   *service.StreakService
	StatsService    *service.StatsService
	GoalService     *service.GoalService
	ProfileService  *service.ProfileService
	ReminderService *service.ReminderService
	Mailer          mailer.Transport // nil when mail is not configured
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	entryRepository := repository.NewEntryRepository(database)
	profileRepository := repository.NewProfileRepository(database)
	goalRepository := repository.NewGoalRepository(database)

	// Services
	entryService := service.NewEntryService(entryRepository)
	streakService := service.NewStreakService(entryRepository)
	statsService := service.NewStatsService(entryRepository)
	goalService := service.NewGoalService(goalRepository, entryRepository)
	profileService := service.NewProfileService(profileRepository)

	app := &App{
		Cfg:            cfg,
		DB:             database,
		EntryService:   entryService,
		StreakService:  streakService,
		StatsService:   statsService,
		GoalService:    goalService,
		ProfileService: profileService,
	}

	// Mail is optional. Without a usable transport the reminder pipeline
	// stays unwired and everything else keeps working.
	if cfg.MailConfigured() {
		transport, err := mailer.NewTransport(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize mail transport: %v", err)
		}

		composer, err := mailer.NewComposer(cfg.AppName)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize mail composer: %v", err)
		}

		app.Mailer = transport
		app.ReminderService = service.NewReminderService(
			profileRepository,
			streakService,
			composer,
			transport,
			cfg.ReminderTime,
			cfg.SendTimeout,
		)
	}

	return app, nil
}

// RemindersEnabled reports whether the reminder pipeline was wired at
// startup.
func (a *App) RemindersEnabled() bool {
	return a.ReminderService != nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
