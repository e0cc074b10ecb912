package repository

import (
	"context"

	"github.com/wingmateapp/wingmate-backend/internal/domain"
)

type LocationRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.UserLocation, error)

	// FindWithinRadius returns all users within radiusMiles of the center,
	// annotated with great-circle distance and sorted nearest first. The
	// center's own user is excluded. An empty result is not an error.
	FindWithinRadius(ctx context.Context, center *domain.UserLocation, radiusMiles float64) ([]domain.CandidateRaw, error)
}
