package mailer

import (
	"context"
	"fmt"

	mail "github.com/wneessen/go-mail"

	"github.com/learntrackhq/learntrack/internal/config"
)

type smtpTransport struct {
	client *mail.Client
	from   string
}

// NewSMTPTransport sends through a plain SMTP relay. Auth is only
// negotiated when a username is configured.
func NewSMTPTransport(cfg *config.Config) (Transport, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.SMTPPort),
	}
	if cfg.SendTimeout > 0 {
		opts = append(opts, mail.WithTimeout(cfg.SendTimeout))
	}
	if cfg.SMTPUsername != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.SMTPUsername),
			mail.WithPassword(cfg.SMTPPassword),
		)
	}

	client, err := mail.NewClient(cfg.SMTPHost, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}

	return &smtpTransport{
		client: client,
		from:   cfg.EmailFrom,
	}, nil
}

func (t *smtpTransport) Send(ctx context.Context, msg Message) error {
	m := mail.NewMsg()

	err := m.From(t.from)
	if err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}

	if msg.ToName != "" {
		err = m.AddToFormat(msg.ToName, msg.To)
	} else {
		err = m.To(msg.To)
	}
	if err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Text)
	m.AddAlternativeString(mail.TypeTextHTML, msg.HTML)

	err = t.client.DialAndSendWithContext(ctx, m)
	if err != nil {
		return fmt.Errorf("failed to send via smtp: %w", err)
	}

	return nil
}

func (t *smtpTransport) Name() string {
	return "smtp"
}
