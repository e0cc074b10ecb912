package domain

import "time"

// UserLocation is one row per user, written by the profile-setup flow and
// read-only to the matching core.
type UserLocation struct {
	ID                int       `json:"id" db:"id"`
	UserID            string    `json:"user_id" db:"user_id"`
	Latitude          float64   `json:"latitude" db:"latitude"`
	Longitude         float64   `json:"longitude" db:"longitude"`
	City              *string   `json:"city" db:"city"`
	MaxTravelDistance float64   `json:"max_travel_distance" db:"max_travel_distance"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
}
