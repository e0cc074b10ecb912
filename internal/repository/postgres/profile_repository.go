package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/wingmateapp/wingmate-backend/internal/domain"
	"github.com/wingmateapp/wingmate-backend/internal/repository"
)

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	query := `
		SELECT id, user_id, COALESCE(experience_level, '') AS experience_level,
		       bio, created_at, updated_at
		FROM user_profiles WHERE user_id = $1
	`
	err := r.db.GetContext(ctx, &profile, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) GetLevelsByUserIDs(ctx context.Context, userIDs []string) (map[string]domain.ExperienceLevel, error) {
	levels := make(map[string]domain.ExperienceLevel, len(userIDs))
	if len(userIDs) == 0 {
		return levels, nil
	}

	query := `
		SELECT user_id, COALESCE(experience_level, '') AS experience_level
		FROM user_profiles WHERE user_id = ANY($1)
	`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(userIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var userID string
		var level domain.ExperienceLevel
		if err := rows.Scan(&userID, &level); err != nil {
			return nil, err
		}
		levels[userID] = level
	}
	return levels, rows.Err()
}

func (r *profileRepository) EnsureExists(ctx context.Context, userID string) error {
	query := `INSERT INTO user_profiles (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`
	_, err := r.db.ExecContext(ctx, query, userID)
	return err
}
