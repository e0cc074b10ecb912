package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/wingmateapp/wingmate-backend/internal/domain"
	"github.com/wingmateapp/wingmate-backend/internal/repository"
)

const partnershipColumns = `id, participant_a, participant_b, status, created_at, updated_at`

type partnershipRepository struct {
	db *sqlx.DB
}

func NewPartnershipRepository(db *sqlx.DB) repository.PartnershipRepository {
	return &partnershipRepository{db: db}
}

// CreatePending writes the partnership row and one pending-slot row per
// participant inside a single transaction. The primary key on
// partnership_pending_slots is what makes "at most one pending partnership
// per user" hold under concurrent writers: the second transaction touching
// the same user fails with a unique violation at commit, which we translate
// to domain.ErrPendingPartnershipExists for the orchestrator to resolve.
func (r *partnershipRepository) CreatePending(ctx context.Context, userA, userB string) (*domain.Partnership, error) {
	if userA == userB {
		return nil, domain.ErrSamePartnership
	}
	a, b := domain.CanonicalPair(userA, userB)

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin create pending: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var p domain.Partnership
	insertPartnership := `
		INSERT INTO partnerships (id, participant_a, participant_b, status)
		VALUES ($1, $2, $3, 'pending')
		RETURNING ` + partnershipColumns
	if err := tx.GetContext(ctx, &p, insertPartnership, uuid.NewString(), a, b); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrPendingPartnershipExists
		}
		return nil, fmt.Errorf("insert partnership: %w", err)
	}

	insertSlots := `
		INSERT INTO partnership_pending_slots (user_id, partnership_id)
		VALUES ($1, $3), ($2, $3)
	`
	if _, err := tx.ExecContext(ctx, insertSlots, a, b, p.ID); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrPendingPartnershipExists
		}
		return nil, fmt.Errorf("claim pending slots: %w", err)
	}

	if err := tx.Commit(); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrPendingPartnershipExists
		}
		return nil, fmt.Errorf("commit create pending: %w", err)
	}
	return &p, nil
}

func (r *partnershipRepository) GetByID(ctx context.Context, id string) (*domain.Partnership, error) {
	var p domain.Partnership
	query := `SELECT ` + partnershipColumns + ` FROM partnerships WHERE id = $1`
	err := r.db.GetContext(ctx, &p, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPartnershipNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *partnershipRepository) GetActivePending(ctx context.Context, userID string) (*domain.Partnership, error) {
	var p domain.Partnership
	query := `
		SELECT ` + partnershipColumns + `
		FROM partnerships
		WHERE (participant_a = $1 OR participant_b = $1) AND status = 'pending'
		LIMIT 1
	`
	err := r.db.GetContext(ctx, &p, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPartnershipNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *partnershipRepository) RecentPartnerIDs(ctx context.Context, userID string, since time.Time) (map[string]struct{}, error) {
	query := `
		SELECT participant_a, participant_b
		FROM partnerships
		WHERE (participant_a = $1 OR participant_b = $1) AND created_at >= $2
	`
	rows, err := r.db.QueryContext(ctx, query, userID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	partners := make(map[string]struct{})
	for rows.Next() {
		var a, b string
		if err := rows.Scan(&a, &b); err != nil {
			return nil, err
		}
		if a == userID {
			partners[b] = struct{}{}
		} else {
			partners[a] = struct{}{}
		}
	}
	return partners, rows.Err()
}

// UpdateStatus transitions a pending partnership and releases both pending
// slots in the same transaction, so a user becomes matchable again the
// instant the decline (or accept) commits.
func (r *partnershipRepository) UpdateStatus(ctx context.Context, id string, status domain.PartnershipStatus) (*domain.Partnership, error) {
	if status != domain.PartnershipAccepted && status != domain.PartnershipDeclined {
		return nil, domain.ErrInvalidStatusChange
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin update status: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var p domain.Partnership
	update := `
		UPDATE partnerships
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = 'pending'
		RETURNING ` + partnershipColumns
	err = tx.GetContext(ctx, &p, update, status, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.classifyMissingPending(ctx, id)
		}
		return nil, fmt.Errorf("update partnership status: %w", err)
	}

	release := `DELETE FROM partnership_pending_slots WHERE partnership_id = $1`
	if _, err := tx.ExecContext(ctx, release, id); err != nil {
		return nil, fmt.Errorf("release pending slots: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit update status: %w", err)
	}
	return &p, nil
}

// classifyMissingPending distinguishes "no such partnership" from "already
// responded to" after a zero-row pending update.
func (r *partnershipRepository) classifyMissingPending(ctx context.Context, id string) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return domain.ErrPartnershipNotPending
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
