// Package streak derives consecutive-day streaks from a user's logged
// session dates. Everything here is a pure function of its inputs: the
// reference time is passed in rather than read from the system clock, and
// no I/O happens. Each time value contributes the calendar date it
// carries in its own location, so date-normalized storage values and a
// wall-clock now compare on equal footing.
package streak

import "time"

// Result is the derived streak state for one user at a reference time.
// It is recomputed on every query and never persisted.
type Result struct {
	HasLoggedToday bool
	CurrentStreak  int
}

// HasLoggedToday reports whether any logged date falls on the same
// calendar day as now. Time-of-day components are ignored.
func HasLoggedToday(days []time.Time, now time.Time) bool {
	today := dayOf(now)
	for _, d := range days {
		if dayOf(d).Equal(today) {
			return true
		}
	}
	return false
}

// Current returns the length of the run of strictly consecutive calendar
// days ending at the most recent logged day. Logging yesterday keeps a
// streak alive; once the most recent logged day is more than one day
// before now, the streak is 0 no matter how long the earlier run was.
//
// The backward walk is anchored at the most recent logged day, not at
// today: a user who logged yesterday but not yet today still sees the
// streak that ends yesterday.
func Current(days []time.Time, now time.Time) int {
	set := distinctDays(days)
	if len(set) == 0 {
		return 0
	}

	mostRecent := maxDay(set)
	today := dayOf(now)
	if today.Sub(mostRecent) > 24*time.Hour {
		return 0
	}

	count := 0
	for d := mostRecent; ; d = d.AddDate(0, 0, -1) {
		if _, ok := set[d]; !ok {
			break
		}
		count++
	}
	return count
}

// Evaluate computes both streak facts in one pass over the same inputs.
func Evaluate(days []time.Time, now time.Time) Result {
	return Result{
		HasLoggedToday: HasLoggedToday(days, now),
		CurrentStreak:  Current(days, now),
	}
}

// dayOf extracts t's calendar date in t's own location and pins it to
// UTC midnight. Representing days as UTC midnights keeps map keys
// comparable and makes day arithmetic exact (no DST in UTC).
func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func distinctDays(days []time.Time) map[time.Time]struct{} {
	set := make(map[time.Time]struct{}, len(days))
	for _, d := range days {
		set[dayOf(d)] = struct{}{}
	}
	return set
}

func maxDay(set map[time.Time]struct{}) time.Time {
	var max time.Time
	for d := range set {
		if d.After(max) {
			max = d
		}
	}
	return max
}
