package repository

import (
	"context"

	"github.com/wingmateapp/wingmate-backend/internal/domain"
)

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.UserProfile, error)

	// GetLevelsByUserIDs fetches experience levels for a batch of users in a
	// single query. Users without a profile are simply absent from the map.
	GetLevelsByUserIDs(ctx context.Context, userIDs []string) (map[string]domain.ExperienceLevel, error)

	// EnsureExists materializes an empty profile row for the user if none
	// exists yet, so partnership writes never fail on the profile foreign key.
	EnsureExists(ctx context.Context, userID string) error
}
