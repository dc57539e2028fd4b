package mailer

import (
	"fmt"
	"log/slog"

	"github.com/learntrackhq/learntrack/internal/config"
)

// NewTransport creates a mail transport based on configuration
func NewTransport(cfg *config.Config) (Transport, error) {
	provider := cfg.MailProvider

	slog.Info("initializing mail transport", "provider", provider)

	switch provider {
	case config.MailProviderResend:
		if cfg.ResendAPIKey == "" {
			return nil, fmt.Errorf("RESEND_API_KEY is required when using the resend transport")
		}
		return NewResendTransport(cfg.ResendAPIKey, cfg.EmailFrom), nil

	case config.MailProviderSMTP:
		if cfg.SMTPHost == "" {
			return nil, fmt.Errorf("SMTP_HOST is required when using the smtp transport")
		}
		return NewSMTPTransport(cfg)

	case config.MailProviderLog:
		return NewLogTransport(), nil

	default:
		return nil, fmt.Errorf("unknown mail provider: %s (supported: resend, smtp, log)", provider)
	}
}
