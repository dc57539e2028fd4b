package mailer

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

type resendTransport struct {
	client *resend.Client
	from   string
}

// NewResendTransport sends through the Resend HTTP API.
func NewResendTransport(apiKey, from string) Transport {
	return &resendTransport{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (t *resendTransport) Send(ctx context.Context, msg Message) error {
	params := &resend.SendEmailRequest{
		From:    t.from,
		To:      []string{rfc5322Address(msg.To, msg.ToName)},
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
	}

	_, err := t.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send via resend: %w", err)
	}

	return nil
}

func (t *resendTransport) Name() string {
	return "resend"
}
