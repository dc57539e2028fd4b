package validation

import (
	"errors"
	"strings"
)

// ValidateUsername validates a learner's display name. Two characters
// minimum, so single-letter typos don't become learners.
func ValidateUsername(username string) error {
	trimmed := strings.TrimSpace(username)

	if trimmed == "" {
		return errors.New("username is required")
	}

	if len(trimmed) < 2 {
		return errors.New("username must be at least 2 characters")
	}

	if len(trimmed) > 100 {
		return errors.New("username is too long (max 100 characters)")
	}

	return nil
}
