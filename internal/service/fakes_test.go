package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/learntrackhq/learntrack/internal/mailer"
	"github.com/learntrackhq/learntrack/internal/model"
	"github.com/learntrackhq/learntrack/internal/repository"
)

// fakeEntryRepo is an in-memory EntryRepository. Setting err makes every
// method fail with it.
type fakeEntryRepo struct {
	entries []*model.Entry
	err     error
}

func (f *fakeEntryRepo) Create(entry *model.Entry) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeEntryRepo) ForUser(username string) ([]*model.Entry, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*model.Entry
	for _, e := range f.entries {
		if e.Username == username {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OccurredOn.After(out[j].OccurredOn) })
	return out, nil
}

func (f *fakeEntryRepo) ForUserInRange(username string, from, to time.Time) ([]*model.Entry, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*model.Entry
	for _, e := range f.entries {
		if e.Username == username && !e.OccurredOn.Before(from) && e.OccurredOn.Before(to) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OccurredOn.Before(out[j].OccurredOn) })
	return out, nil
}

func (f *fakeEntryRepo) All() ([]*model.Entry, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*model.Entry, len(f.entries))
	copy(out, f.entries)
	sort.Slice(out, func(i, j int) bool { return out[i].OccurredOn.After(out[j].OccurredOn) })
	return out, nil
}

func (f *fakeEntryRepo) Delete(username, entryID string) error {
	if f.err != nil {
		return f.err
	}
	for i, e := range f.entries {
		if e.ID == entryID && e.Username == username {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return repository.ErrEntryNotFound
}

func (f *fakeEntryRepo) LoggedDays(username string) ([]time.Time, error) {
	if f.err != nil {
		return nil, f.err
	}
	seen := make(map[time.Time]struct{})
	var days []time.Time
	for _, e := range f.entries {
		if e.Username != username {
			continue
		}
		day := e.Day()
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	return days, nil
}

func (f *fakeEntryRepo) Totals() (*repository.EntryTotals, error) {
	if f.err != nil {
		return nil, f.err
	}
	totals := &repository.EntryTotals{}
	users := make(map[string]struct{})
	for _, e := range f.entries {
		totals.TotalEntries++
		totals.TotalHours += e.Hours
		users[e.Username] = struct{}{}
	}
	totals.UniqueLearners = len(users)
	return totals, nil
}

func (f *fakeEntryRepo) Leaderboard(limit int) ([]*model.LeaderboardRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	agg := make(map[string]*model.LeaderboardRow)
	for _, e := range f.entries {
		row, ok := agg[e.Username]
		if !ok {
			row = &model.LeaderboardRow{Name: e.Username}
			agg[e.Username] = row
		}
		row.Hours += e.Hours
		row.Entries++
	}
	rows := make([]*model.LeaderboardRow, 0, len(agg))
	for _, row := range agg {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Hours != rows[j].Hours {
			return rows[i].Hours > rows[j].Hours
		}
		return rows[i].Name < rows[j].Name
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

// fakeProfileRepo is an in-memory ProfileRepository. Setting err makes
// every method fail with it.
type fakeProfileRepo struct {
	profiles map[string]*model.ReminderProfile
	err      error
}

func newFakeProfileRepo(profiles ...*model.ReminderProfile) *fakeProfileRepo {
	f := &fakeProfileRepo{profiles: make(map[string]*model.ReminderProfile)}
	for _, p := range profiles {
		f.profiles[p.Username] = p
	}
	return f
}

func (f *fakeProfileRepo) ByUsername(username string) (*model.ReminderProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.profiles[username]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}
	return p, nil
}

func (f *fakeProfileRepo) Create(profile *model.ReminderProfile) error {
	f.profiles[profile.Username] = profile
	return nil
}

func (f *fakeProfileRepo) Update(profile *model.ReminderProfile) error {
	if _, ok := f.profiles[profile.Username]; !ok {
		return repository.ErrProfileNotFound
	}
	f.profiles[profile.Username] = profile
	return nil
}

func (f *fakeProfileRepo) Remindable() ([]*model.ReminderProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*model.ReminderProfile
	for _, p := range f.profiles {
		if p.Remindable() {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

// fakeGoalRepo is an in-memory GoalRepository keyed by username and
// category.
type fakeGoalRepo struct {
	goals map[string]*model.Goal
}

func newFakeGoalRepo() *fakeGoalRepo {
	return &fakeGoalRepo{goals: make(map[string]*model.Goal)}
}

func (f *fakeGoalRepo) Upsert(goal *model.Goal) error {
	key := goal.Username + "/" + goal.Category
	if existing, ok := f.goals[key]; ok {
		existing.TargetHours = goal.TargetHours
		existing.UpdatedAt = goal.UpdatedAt
		return nil
	}
	f.goals[key] = goal
	return nil
}

func (f *fakeGoalRepo) ForUser(username string) ([]*model.Goal, error) {
	var out []*model.Goal
	for _, g := range f.goals {
		if g.Username == username {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out, nil
}

func (f *fakeGoalRepo) Delete(username, category string) error {
	key := username + "/" + category
	if _, ok := f.goals[key]; !ok {
		return repository.ErrGoalNotFound
	}
	delete(f.goals, key)
	return nil
}

// fakeTransport counts every attempt and records successful sends.
// Addresses present in fail always error.
type fakeTransport struct {
	mu       sync.Mutex
	attempts int
	sent     []mailer.Message
	fail     map[string]error
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{fail: make(map[string]error)}
}

func (f *fakeTransport) Send(ctx context.Context, msg mailer.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.attempts++
	if err, ok := f.fail[msg.To]; ok {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeTransport) Name() string {
	return "fake"
}
