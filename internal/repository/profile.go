package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/learntrackhq/learntrack/internal/model"
)

var (
	ErrProfileNotFound = errors.New("reminder profile not found")
)

type ProfileRepository interface {
	ByUsername(username string) (*model.ReminderProfile, error)
	Create(profile *model.ReminderProfile) error
	Update(profile *model.ReminderProfile) error
	Remindable() ([]*model.ReminderProfile, error)
}

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) ByUsername(username string) (*model.ReminderProfile, error) {
	var profile model.ReminderProfile
	err := r.db.Get(&profile, `SELECT * FROM reminder_profiles WHERE username = $1`, username)

	if err == sql.ErrNoRows {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *profileRepository) Create(profile *model.ReminderProfile) error {
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now()
	}
	if profile.UpdatedAt.IsZero() {
		profile.UpdatedAt = time.Now()
	}

	_, err := r.db.Exec(`
		INSERT INTO reminder_profiles (username, email, reminder_enabled, reminder_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, profile.Username, profile.Email, profile.ReminderEnabled, profile.ReminderTime, profile.CreatedAt, profile.UpdatedAt)

	return err
}

func (r *profileRepository) Update(profile *model.ReminderProfile) error {
	result, err := r.db.Exec(`
		UPDATE reminder_profiles
		SET email = $1, reminder_enabled = $2, reminder_time = $3, updated_at = $4
		WHERE username = $5
	`, profile.Email, profile.ReminderEnabled, profile.ReminderTime, time.Now(), profile.Username)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrProfileNotFound
	}

	return nil
}

// Remindable returns every profile that opted in and has an address on
// file, the scan set for one reminder cycle.
func (r *profileRepository) Remindable() ([]*model.ReminderProfile, error) {
	var profiles []*model.ReminderProfile
	query := `SELECT * FROM reminder_profiles
	          WHERE reminder_enabled = TRUE AND email != ''
	          ORDER BY username ASC`

	err := r.db.Select(&profiles, query)
	if err != nil {
		return nil, err
	}

	return profiles, nil
}
