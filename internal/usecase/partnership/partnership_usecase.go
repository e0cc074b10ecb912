// Package partnership is the downstream collaborator that owns the
// accept/decline state machine for partnerships the matching service
// created. Declining (or accepting) releases the pending slots, which is
// what lets a user request a fresh match afterwards.
package partnership

import (
	"context"

	"go.uber.org/zap"

	"github.com/wingmateapp/wingmate-backend/internal/domain"
	"github.com/wingmateapp/wingmate-backend/internal/repository"
)

type Service struct {
	partnershipRepo repository.PartnershipRepository
	logger          *zap.Logger
}

func NewService(partnershipRepo repository.PartnershipRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{partnershipRepo: partnershipRepo, logger: logger}
}

// GetPending returns the caller's active pending partnership.
func (s *Service) GetPending(ctx context.Context, userID string) (*domain.Partnership, error) {
	return s.partnershipRepo.GetActivePending(ctx, userID)
}

// Respond accepts or declines a pending partnership on behalf of one of its
// participants. A partnership id belonging to someone else is reported as
// not found rather than forbidden, to avoid confirming the row exists.
func (s *Service) Respond(ctx context.Context, userID, partnershipID string, accept bool) (*domain.Partnership, error) {
	p, err := s.partnershipRepo.GetByID(ctx, partnershipID)
	if err != nil {
		return nil, err
	}
	if !p.HasUser(userID) {
		return nil, domain.ErrPartnershipNotFound
	}

	status := domain.PartnershipDeclined
	if accept {
		status = domain.PartnershipAccepted
	}

	updated, err := s.partnershipRepo.UpdateStatus(ctx, partnershipID, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info("partnership responded",
		zap.String("partnership_id", partnershipID),
		zap.String("user_id", userID),
		zap.String("status", string(status)))
	return updated, nil
}
