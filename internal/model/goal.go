package model

import "time"

// Goal is a per-category weekly hour target. There is at most one goal
// per (username, category) pair.
type Goal struct {
	ID          string    `db:"id"`
	Username    string    `db:"username"`
	Category    string    `db:"category"`
	TargetHours float64   `db:"target_hours"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
