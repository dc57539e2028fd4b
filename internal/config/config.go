package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Mail provider names accepted by MAIL_PROVIDER.
const (
	MailProviderResend = "resend"
	MailProviderSMTP   = "smtp"
	MailProviderLog    = "log"
)

type Config struct {
	// Application
	AppName string
	AppEnv  string

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver     string
	DBConnection string

	// Reminders
	ReminderTime         string        // daily fire time, server-local "HH:MM"
	ReminderPollInterval time.Duration // how often the scheduler checks readiness
	SendTimeout          time.Duration // per-recipient ceiling on a transport call

	// Mail ("resend", "smtp", or "log" for development)
	MailProvider string
	EmailFrom    string
	ResendAPIKey string
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string

	// Observability (optional)
	SentryDSN string
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName: envString("APP_NAME", "LearnTrack"),
		AppEnv:  envRequired("APP_ENV"), // Required: 'development' or 'production'

		// Database
		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/learntrack.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),

		// Reminders
		ReminderTime:         envClock("REMINDER_TIME", "20:00"),
		ReminderPollInterval: envDuration("REMINDER_POLL_INTERVAL", time.Minute),
		SendTimeout:          envDuration("MAIL_SEND_TIMEOUT", 10*time.Second),

		// Mail (credentials optional in development; without them the
		// reminder scheduler stays off)
		MailProvider: envString("MAIL_PROVIDER", MailProviderLog),
		EmailFrom:    envString("EMAIL_FROM", "reminders@example.com"),
		ResendAPIKey: envString("RESEND_API_KEY", ""),
		SMTPHost:     envString("SMTP_HOST", ""),
		SMTPPort:     envInt("SMTP_PORT", 587),
		SMTPUsername: envString("SMTP_USERNAME", ""),
		SMTPPassword: envString("SMTP_PASSWORD", ""),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),
	}

	if cfg.IsProduction() && !cfg.MailConfigured() {
		slog.Warn("mail transport not configured; daily reminders will be disabled",
			"provider", cfg.MailProvider,
			"hint", "set MAIL_PROVIDER=resend with RESEND_API_KEY, or MAIL_PROVIDER=smtp with SMTP_HOST")
	}

	return cfg
}

// MailConfigured reports whether a usable transport can be built from the
// loaded settings. The "log" transport only counts in development: it
// records instead of delivering, which is useless in production.
func (c *Config) MailConfigured() bool {
	switch c.MailProvider {
	case MailProviderResend:
		return c.ResendAPIKey != ""
	case MailProviderSMTP:
		return c.SMTPHost != ""
	case MailProviderLog:
		return c.IsDevelopment()
	default:
		return false
	}
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

// envClock reads a wall-clock "HH:MM" value.
func envClock(key, def string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	_, err := time.Parse("15:04", v)
	if err != nil {
		slog.Warn("config invalid time, using default", "key", key, "value", v, "default", def)
		return def
	}
	return v
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}
