package repository

import (
	"context"

	"github.com/wingmateapp/wingmate-backend/internal/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
