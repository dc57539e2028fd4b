package service

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/learntrackhq/learntrack/internal/model"
	"github.com/learntrackhq/learntrack/internal/repository"
)

// leaderboardSize is how many learners the dashboard ranks.
const leaderboardSize = 5

// StatsService derives the dashboard aggregates and per-user weekly
// rollups. Everything is computed on read; nothing is cached.
type StatsService struct {
	entries repository.EntryRepository
	nowFn   func() time.Time
}

func NewStatsService(entries repository.EntryRepository) *StatsService {
	return &StatsService{
		entries: entries,
		nowFn:   time.Now,
	}
}

// Overview returns the site-wide totals plus the top learners by hours.
// Hour figures are rounded to one decimal for display parity across
// surfaces.
func (s *StatsService) Overview() (*model.Stats, error) {
	totals, err := s.entries.Totals()
	if err != nil {
		return nil, fmt.Errorf("failed to load entry totals: %w", err)
	}

	rows, err := s.entries.Leaderboard(leaderboardSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}

	stats := &model.Stats{
		TotalEntries:   totals.TotalEntries,
		TotalHours:     round1(totals.TotalHours),
		UniqueLearners: totals.UniqueLearners,
	}
	if totals.TotalEntries > 0 {
		stats.AvgHours = round1(totals.TotalHours / float64(totals.TotalEntries))
	}

	stats.TopLearners = make([]model.LeaderboardRow, 0, len(rows))
	for _, row := range rows {
		stats.TopLearners = append(stats.TopLearners, model.LeaderboardRow{
			Name:    row.Name,
			Hours:   round1(row.Hours),
			Entries: row.Entries,
		})
	}

	return stats, nil
}

// Weekly returns Monday-anchored rollups for the trailing weeks,
// oldest first and ending with the current week. Weeks without entries
// appear as zero rows.
func (s *StatsService) Weekly(username string, weeks int) ([]model.WeekSummary, error) {
	if weeks < 1 {
		weeks = 1
	}

	thisMonday := mondayOf(s.nowFn())
	from := thisMonday.AddDate(0, 0, -7*(weeks-1))
	to := thisMonday.AddDate(0, 0, 7)

	entries, err := s.entries.ForUserInRange(strings.TrimSpace(username), from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	summaries := make([]model.WeekSummary, weeks)
	for i := range summaries {
		start := from.AddDate(0, 0, 7*i)
		summaries[i] = model.WeekSummary{
			WeekStart: start,
			WeekEnd:   start.AddDate(0, 0, 6),
		}
	}

	active := make([]map[time.Time]struct{}, weeks)
	for _, entry := range entries {
		day := entry.Day()
		idx := int(day.Sub(from).Hours()) / (24 * 7)
		if idx < 0 || idx >= weeks {
			continue
		}

		summaries[idx].TotalHours += entry.Hours
		summaries[idx].EntryCount++

		if active[idx] == nil {
			active[idx] = make(map[time.Time]struct{})
		}
		active[idx][day] = struct{}{}
	}

	for i := range summaries {
		summaries[i].TotalHours = round1(summaries[i].TotalHours)
		summaries[i].DaysActive = len(active[i])
	}

	return summaries, nil
}

// mondayOf returns the Monday of t's calendar week as a UTC midnight.
func mondayOf(t time.Time) time.Time {
	day := model.DateOnly(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
