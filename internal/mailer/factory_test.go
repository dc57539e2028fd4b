package mailer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learntrackhq/learntrack/internal/config"
)

func TestNewTransportUnknownProvider(t *testing.T) {
	_, err := NewTransport(&config.Config{MailProvider: "carrier-pigeon"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mail provider")
}

func TestNewTransportRequiresCredentials(t *testing.T) {
	_, err := NewTransport(&config.Config{MailProvider: config.MailProviderResend})
	require.Error(t, err)

	_, err = NewTransport(&config.Config{MailProvider: config.MailProviderSMTP})
	require.Error(t, err)
}

func TestNewTransportLog(t *testing.T) {
	tr, err := NewTransport(&config.Config{MailProvider: config.MailProviderLog})
	require.NoError(t, err)
	assert.Equal(t, "log", tr.Name())

	err = tr.Send(context.Background(), Message{To: "ada@example.com", Subject: "hi"})
	assert.NoError(t, err)
}

func TestNewTransportSMTP(t *testing.T) {
	tr, err := NewTransport(&config.Config{
		MailProvider: config.MailProviderSMTP,
		SMTPHost:     "localhost",
		SMTPPort:     2525,
		SendTimeout:  time.Second,
		EmailFrom:    "reminders@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "smtp", tr.Name())
}

func TestRFC5322Address(t *testing.T) {
	assert.Equal(t, `"Ada Lovelace" <ada@example.com>`, rfc5322Address("ada@example.com", "Ada Lovelace"))
	assert.Equal(t, "<ada@example.com>", rfc5322Address("ada@example.com", ""))
}
