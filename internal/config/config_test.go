package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	for _, key := range []string{"APP_NAME", "DB_DRIVER", "REMINDER_TIME", "REMINDER_POLL_INTERVAL", "MAIL_SEND_TIMEOUT", "MAIL_PROVIDER", "SMTP_PORT"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "LearnTrack", cfg.AppName)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "20:00", cfg.ReminderTime)
	assert.Equal(t, time.Minute, cfg.ReminderPollInterval)
	assert.Equal(t, 10*time.Second, cfg.SendTimeout)
	assert.Equal(t, MailProviderLog, cfg.MailProvider)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_NAME", "TrackerX")
	t.Setenv("REMINDER_TIME", "07:30")
	t.Setenv("REMINDER_POLL_INTERVAL", "30s")
	t.Setenv("MAIL_SEND_TIMEOUT", "5s")
	t.Setenv("MAIL_PROVIDER", "resend")
	t.Setenv("RESEND_API_KEY", "re_123")
	t.Setenv("SMTP_PORT", "2525")

	cfg := Load()

	assert.Equal(t, "TrackerX", cfg.AppName)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "07:30", cfg.ReminderTime)
	assert.Equal(t, 30*time.Second, cfg.ReminderPollInterval)
	assert.Equal(t, 5*time.Second, cfg.SendTimeout)
	assert.Equal(t, 2525, cfg.SMTPPort)
	assert.True(t, cfg.MailConfigured())
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("REMINDER_TIME", "9pm")
	t.Setenv("REMINDER_POLL_INTERVAL", "soon")
	t.Setenv("SMTP_PORT", "not-a-port")

	cfg := Load()

	assert.Equal(t, "20:00", cfg.ReminderTime)
	assert.Equal(t, time.Minute, cfg.ReminderPollInterval)
	assert.Equal(t, 587, cfg.SMTPPort)
}

func TestMailConfigured(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want bool
	}{
		{"resend with key", Config{AppEnv: "production", MailProvider: MailProviderResend, ResendAPIKey: "re_123"}, true},
		{"resend without key", Config{AppEnv: "production", MailProvider: MailProviderResend}, false},
		{"smtp with host", Config{AppEnv: "production", MailProvider: MailProviderSMTP, SMTPHost: "mail.example.com"}, true},
		{"smtp without host", Config{AppEnv: "production", MailProvider: MailProviderSMTP}, false},
		{"log in development", Config{AppEnv: "development", MailProvider: MailProviderLog}, true},
		{"log in production", Config{AppEnv: "production", MailProvider: MailProviderLog}, false},
		{"unknown provider", Config{AppEnv: "development", MailProvider: "carrier-pigeon"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.MailConfigured())
		})
	}
}
