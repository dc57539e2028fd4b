package model

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ReminderProfile holds one user's notification preference. Profiles are
// created implicitly with defaults the first time a username is seen and
// are never deleted by the reminder pipeline.
type ReminderProfile struct {
	Username        string    `db:"username"`
	Email           string    `db:"email"`
	ReminderEnabled bool      `db:"reminder_enabled"`
	ReminderTime    string    `db:"reminder_time"` // "HH:MM", server-local; empty means the configured default
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

// Remindable reports whether the profile can receive reminders at all:
// reminders are opt-in and inactive until an email address is set.
func (p *ReminderProfile) Remindable() bool {
	return p.ReminderEnabled && p.Email != ""
}

// DisplayName turns a username into a greeting-friendly name.
// "ada.lovelace" becomes "Ada Lovelace".
func DisplayName(username string) string {
	cleaned := strings.NewReplacer(".", " ", "_", " ", "-", " ").Replace(username)

	words := strings.Fields(cleaned)
	caser := cases.Title(language.English)
	for i, word := range words {
		words[i] = caser.String(word)
	}

	return strings.Join(words, " ")
}
