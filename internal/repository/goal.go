package repository

import (
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/learntrackhq/learntrack/internal/model"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
)

type GoalRepository interface {
	Upsert(goal *model.Goal) error
	ForUser(username string) ([]*model.Goal, error)
	Delete(username, category string) error
}

type goalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) GoalRepository {
	return &goalRepository{db: db}
}

// Upsert inserts a weekly target, or replaces the target hours when the
// user already has a goal for that category.
func (r *goalRepository) Upsert(goal *model.Goal) error {
	query := `INSERT INTO goals (id, username, category, target_hours, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          ON CONFLICT (username, category)
	          DO UPDATE SET target_hours = EXCLUDED.target_hours, updated_at = EXCLUDED.updated_at`

	_, err := r.db.Exec(query,
		goal.ID,
		goal.Username,
		goal.Category,
		goal.TargetHours,
		goal.CreatedAt,
		goal.UpdatedAt,
	)

	return err
}

func (r *goalRepository) ForUser(username string) ([]*model.Goal, error) {
	var goals []*model.Goal
	query := `SELECT * FROM goals WHERE username = $1 ORDER BY category ASC`

	err := r.db.Select(&goals, query, username)
	if err != nil {
		return nil, err
	}

	return goals, nil
}

func (r *goalRepository) Delete(username, category string) error {
	query := `DELETE FROM goals WHERE username = $1 AND category = $2`
	result, err := r.db.Exec(query, username, category)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGoalNotFound
	}

	return nil
}
