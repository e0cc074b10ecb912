package domain

import "time"

type User struct {
	ID          string    `json:"id" db:"id"`
	DisplayName string    `json:"display_name" db:"display_name"`
	Email       string    `json:"email" db:"email"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// UserProfile is the slice of profile data the matching core reads. Profiles
// are created lazily elsewhere in the system, so any reader must treat a
// missing row as "ineligible", not as a failure.
type UserProfile struct {
	ID              int             `json:"id" db:"id"`
	UserID          string          `json:"user_id" db:"user_id"`
	ExperienceLevel ExperienceLevel `json:"experience_level" db:"experience_level"`
	Bio             *string         `json:"bio" db:"bio"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at" db:"updated_at"`
}
