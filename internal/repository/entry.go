package repository

import (
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/learntrackhq/learntrack/internal/model"
)

var (
	ErrEntryNotFound = errors.New("entry not found")
)

// EntryTotals carries the site-wide aggregates in one row.
type EntryTotals struct {
	TotalEntries   int     `db:"total_entries"`
	TotalHours     float64 `db:"total_hours"`
	UniqueLearners int     `db:"unique_learners"`
}

type EntryRepository interface {
	Create(entry *model.Entry) error
	ForUser(username string) ([]*model.Entry, error)
	ForUserInRange(username string, from, to time.Time) ([]*model.Entry, error)
	All() ([]*model.Entry, error)
	Delete(username, entryID string) error
	LoggedDays(username string) ([]time.Time, error)
	Totals() (*EntryTotals, error)
	Leaderboard(limit int) ([]*model.LeaderboardRow, error)
}

type entryRepository struct {
	db *sqlx.DB
}

func NewEntryRepository(db *sqlx.DB) EntryRepository {
	return &entryRepository{db: db}
}

func (r *entryRepository) Create(entry *model.Entry) error {
	query := `INSERT INTO entries (id, username, occurred_on, hours, category, notes, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(query,
		entry.ID,
		entry.Username,
		entry.OccurredOn,
		entry.Hours,
		entry.Category,
		entry.Notes,
		entry.CreatedAt,
	)

	return err
}

func (r *entryRepository) ForUser(username string) ([]*model.Entry, error) {
	var entries []*model.Entry
	query := `SELECT * FROM entries WHERE username = $1 ORDER BY occurred_on DESC, created_at DESC`

	err := r.db.Select(&entries, query, username)
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// ForUserInRange returns the user's entries with from <= occurred_on < to.
func (r *entryRepository) ForUserInRange(username string, from, to time.Time) ([]*model.Entry, error) {
	var entries []*model.Entry
	query := `SELECT * FROM entries
	          WHERE username = $1 AND occurred_on >= $2 AND occurred_on < $3
	          ORDER BY occurred_on ASC`

	err := r.db.Select(&entries, query, username, from, to)
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *entryRepository) All() ([]*model.Entry, error) {
	var entries []*model.Entry
	query := `SELECT * FROM entries ORDER BY occurred_on DESC, created_at DESC`

	err := r.db.Select(&entries, query)
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *entryRepository) Delete(username, entryID string) error {
	query := `DELETE FROM entries WHERE id = $1 AND username = $2`
	result, err := r.db.Exec(query, entryID, username)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrEntryNotFound
	}

	return nil
}

// LoggedDays returns the distinct days the user logged on. Values are
// stored date-normalized, so DISTINCT collapses same-day sessions.
func (r *entryRepository) LoggedDays(username string) ([]time.Time, error) {
	var days []time.Time
	query := `SELECT DISTINCT occurred_on FROM entries WHERE username = $1 ORDER BY occurred_on DESC`

	err := r.db.Select(&days, query, username)
	if err != nil {
		return nil, err
	}

	return days, nil
}

func (r *entryRepository) Totals() (*EntryTotals, error) {
	totals := &EntryTotals{}
	query := `SELECT COUNT(*) AS total_entries,
	                 COALESCE(SUM(hours), 0) AS total_hours,
	                 COUNT(DISTINCT username) AS unique_learners
	          FROM entries`

	err := r.db.Get(totals, query)
	if err != nil {
		return nil, err
	}

	return totals, nil
}

func (r *entryRepository) Leaderboard(limit int) ([]*model.LeaderboardRow, error) {
	var rows []*model.LeaderboardRow
	query := `SELECT username AS name,
	                 SUM(hours) AS hours,
	                 COUNT(*) AS entries
	          FROM entries
	          GROUP BY username
	          ORDER BY hours DESC, name ASC
	          LIMIT $1`

	err := r.db.Select(&rows, query, limit)
	if err != nil {
		return nil, err
	}

	return rows, nil
}
