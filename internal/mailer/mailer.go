// Package mailer delivers reminder email through a pluggable transport.
package mailer

import (
	"context"
	"net/mail"
)

// Message is one outbound email, already composed.
type Message struct {
	To      string
	ToName  string
	Subject string
	HTML    string
	Text    string
}

// Transport defines the interface that all mail transports must implement
type Transport interface {
	// Send delivers the message. Cancellation and deadlines come from ctx.
	Send(ctx context.Context, msg Message) error

	// Name returns the transport name (e.g., "resend", "smtp")
	Name() string
}

// rfc5322Address renders "Name <addr>" for transports that take a single
// address string. An empty name yields just the bracketed address.
func rfc5322Address(addr, name string) string {
	a := mail.Address{Name: name, Address: addr}
	return a.String()
}
