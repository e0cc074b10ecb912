package postgres

import (
	"context"
	"database/sql"
	"errors"
	"sort"

	"github.com/jmoiron/sqlx"
	"github.com/wingmateapp/wingmate-backend/internal/domain"
	"github.com/wingmateapp/wingmate-backend/internal/geo"
	"github.com/wingmateapp/wingmate-backend/internal/repository"
)

type locationRepository struct {
	db *sqlx.DB
}

func NewLocationRepository(db *sqlx.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) GetByUserID(ctx context.Context, userID string) (*domain.UserLocation, error) {
	var loc domain.UserLocation
	query := `
		SELECT id, user_id, latitude, longitude, city, max_travel_distance, updated_at
		FROM user_locations WHERE user_id = $1
	`
	err := r.db.GetContext(ctx, &loc, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLocationNotFound
		}
		return nil, err
	}
	return &loc, nil
}

// FindWithinRadius prefilters rows with a bounding-box index scan, then
// applies the exact haversine distance in Go. Results come back nearest
// first, ties broken by user id.
func (r *locationRepository) FindWithinRadius(ctx context.Context, center *domain.UserLocation, radiusMiles float64) ([]domain.CandidateRaw, error) {
	box := geo.BoundingBoxFor(center.Latitude, center.Longitude, radiusMiles)

	query := `
		SELECT user_id, latitude, longitude
		FROM user_locations
		WHERE user_id <> $1
		  AND latitude BETWEEN $2 AND $3
		  AND longitude BETWEEN $4 AND $5
	`
	rows, err := r.db.QueryContext(ctx, query, center.UserID, box.MinLat, box.MaxLat, box.MinLon, box.MaxLon)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candidates []domain.CandidateRaw
	for rows.Next() {
		var userID string
		var lat, lon float64
		if err := rows.Scan(&userID, &lat, &lon); err != nil {
			return nil, err
		}
		distance := geo.HaversineMiles(center.Latitude, center.Longitude, lat, lon)
		if distance > radiusMiles {
			continue
		}
		candidates = append(candidates, domain.CandidateRaw{UserID: userID, DistanceMiles: distance})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].DistanceMiles != candidates[j].DistanceMiles {
			return candidates[i].DistanceMiles < candidates[j].DistanceMiles
		}
		return candidates[i].UserID < candidates[j].UserID
	})
	return candidates, nil
}
