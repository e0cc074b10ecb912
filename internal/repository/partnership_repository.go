package repository

import (
	"context"
	"time"

	"github.com/wingmateapp/wingmate-backend/internal/domain"
)

type PartnershipRepository interface {
	// CreatePending inserts a pending partnership for the canonicalized pair.
	// The storage layer guarantees at most one pending row per participant;
	// losing a concurrent race returns domain.ErrPendingPartnershipExists.
	CreatePending(ctx context.Context, userA, userB string) (*domain.Partnership, error)

	GetByID(ctx context.Context, id string) (*domain.Partnership, error)

	// GetActivePending returns the user's pending partnership, if any, as
	// either participant. domain.ErrPartnershipNotFound when none exists.
	GetActivePending(ctx context.Context, userID string) (*domain.Partnership, error)

	// RecentPartnerIDs returns the set of users the given user has any
	// partnership row with (any status) created at or after since. One
	// batched query, regardless of candidate count.
	RecentPartnerIDs(ctx context.Context, userID string, since time.Time) (map[string]struct{}, error)

	// UpdateStatus transitions a pending partnership to accepted or declined,
	// releasing the pending slots in the same transaction.
	UpdateStatus(ctx context.Context, id string, status domain.PartnershipStatus) (*domain.Partnership, error)
}
