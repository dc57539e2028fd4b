package model

import "time"

const DefaultCategory = "General"

// Entry is one recorded study session. OccurredOn is a calendar date:
// it is normalized to UTC midnight of the caller's calendar day at the
// persistence boundary, and its time-of-day carries no meaning. Several
// entries on the same day still count as a single logged day for streak
// purposes.
type Entry struct {
	ID         string    `db:"id"`
	Username   string    `db:"username"`
	OccurredOn time.Time `db:"occurred_on"`
	Hours      float64   `db:"hours"`
	Category   string    `db:"category"`
	Notes      string    `db:"notes"`
	CreatedAt  time.Time `db:"created_at"`
}

// Day returns the entry's calendar date as a UTC midnight.
func (e *Entry) Day() time.Time {
	return DateOnly(e.OccurredOn)
}

// DateOnly reduces t to its calendar date, read in t's own location, and
// pins it to UTC midnight. UTC midnights survive driver round trips
// unchanged and make day arithmetic exact.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
