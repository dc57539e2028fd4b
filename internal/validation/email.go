package validation

import (
	"errors"
	"net/mail"
)

// ValidateEmail validates a reminder address with Go's RFC 5322 parser.
// Reminder emails are optional, so callers decide whether an empty value
// is acceptable; this only judges non-empty input.
func ValidateEmail(email string) error {
	if email == "" {
		return errors.New("email address is required")
	}

	// RFC 5321 caps the full address at 254 characters.
	if len(email) > 254 {
		return errors.New("email address is too long (max 254 characters)")
	}

	_, err := mail.ParseAddress(email)
	if err != nil {
		return errors.New("invalid email address format")
	}

	return nil
}
