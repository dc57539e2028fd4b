package model

import "time"

// Stats is the site-wide aggregate the dashboard renders. Derived on
// every query, never persisted.
type Stats struct {
	TotalEntries   int
	TotalHours     float64
	UniqueLearners int
	AvgHours       float64
	TopLearners    []LeaderboardRow
}

// LeaderboardRow is one learner's aggregate, ranked by total hours.
type LeaderboardRow struct {
	Name    string  `db:"name"`
	Hours   float64 `db:"hours"`
	Entries int     `db:"entries"`
}

// WeekSummary is a Monday-anchored weekly rollup of one user's sessions.
// WeekEnd is the Sunday of the same week, inclusive.
type WeekSummary struct {
	WeekStart  time.Time
	WeekEnd    time.Time
	TotalHours float64
	EntryCount int
	DaysActive int
}

// GoalProgress reports hours logged this week against a category target.
// Percent is capped at 100.
type GoalProgress struct {
	Category    string
	TargetHours float64
	LoggedHours float64
	Percent     int
}
