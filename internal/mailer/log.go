package mailer

import (
	"context"
	"log/slog"
)

type logTransport struct{}

// NewLogTransport records outbound mail instead of delivering it, for
// development runs without mail credentials.
func NewLogTransport() Transport {
	return &logTransport{}
}

func (t *logTransport) Send(_ context.Context, msg Message) error {
	slog.Info("email sent (dev mode)",
		"to", msg.To,
		"to_name", msg.ToName,
		"subject", msg.Subject,
		"text", msg.Text,
	)
	return nil
}

func (t *logTransport) Name() string {
	return "log"
}
