package matching

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/wingmateapp/wingmate-backend/internal/domain"
	"github.com/wingmateapp/wingmate-backend/internal/geo"
	"github.com/wingmateapp/wingmate-backend/internal/repository"
)

// ReasonNoCandidates is the terminal "nobody eligible in range" outcome. It
// is communicated in the result, never as an error.
const ReasonNoCandidates = "no_candidates"

// Params are the matching policy knobs loaded from configuration.
type Params struct {
	DefaultRadiusMiles   float64
	MinRadiusMiles       float64
	MaxRadiusMiles       float64
	RecencyExclusionDays int
}

// PartnerSummary is the slice of partner data returned alongside a match.
type PartnerSummary struct {
	UserID          string                 `json:"user_id"`
	DisplayName     string                 `json:"display_name,omitempty"`
	City            *string                `json:"city,omitempty"`
	ExperienceLevel domain.ExperienceLevel `json:"experience_level,omitempty"`
	DistanceMiles   *float64               `json:"distance_miles,omitempty"`
}

// MatchResult is the outcome of a RequestMatch call.
type MatchResult struct {
	Matched       bool            `json:"matched"`
	Reason        string          `json:"reason,omitempty"`
	PartnershipID string          `json:"partnership_id,omitempty"`
	PartnerID     string          `json:"partner_id,omitempty"`
	Partner       *PartnerSummary `json:"partner,omitempty"`
	Existing      bool            `json:"existing,omitempty"`
}

// Service pairs a requesting user with the nearest compatible wingman and
// persists the resulting pending partnership. It holds no per-request state;
// any number of calls may run concurrently, with correctness for the shared
// partnership store delegated to its transactional uniqueness guarantees.
type Service struct {
	userRepo        repository.UserRepository
	profileRepo     repository.ProfileRepository
	locationRepo    repository.LocationRepository
	partnershipRepo repository.PartnershipRepository
	params          Params
	logger          *zap.Logger
	now             func() time.Time
}

func NewService(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	locationRepo repository.LocationRepository,
	partnershipRepo repository.PartnershipRepository,
	params Params,
	logger *zap.Logger,
) *Service {
	if params.DefaultRadiusMiles <= 0 {
		params.DefaultRadiusMiles = 20
	}
	if params.MinRadiusMiles <= 0 {
		params.MinRadiusMiles = 1
	}
	if params.MaxRadiusMiles <= 0 {
		params.MaxRadiusMiles = 100
	}
	if params.RecencyExclusionDays <= 0 {
		params.RecencyExclusionDays = 7
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		userRepo:        userRepo,
		profileRepo:     profileRepo,
		locationRepo:    locationRepo,
		partnershipRepo: partnershipRepo,
		params:          params,
		logger:          logger,
		now:             time.Now,
	}
}

// RequestMatch runs the full matching flow for one user:
// throttle check → geo query → filter → select → persist. Repeated calls
// while a pending partnership exists return that partnership unchanged, which
// is what makes the operation idempotent and retries safe.
func (s *Service) RequestMatch(ctx context.Context, userID string) (*MatchResult, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("load requesting user: %w", err)
	}

	// Throttle: an active pending partnership short-circuits everything.
	existing, err := s.partnershipRepo.GetActivePending(ctx, userID)
	if err == nil {
		return s.existingResult(ctx, userID, existing), nil
	}
	if !errors.Is(err, domain.ErrPartnershipNotFound) {
		return nil, fmt.Errorf("throttle check: %w", err)
	}

	location, err := s.locationRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrLocationNotFound) {
			return noCandidatesResult(), nil
		}
		return nil, fmt.Errorf("load requester location: %w", err)
	}
	if err := geo.ValidateCoordinates(location.Latitude, location.Longitude); err != nil {
		s.logger.Warn("stored location has invalid coordinates",
			zap.String("user_id", userID), zap.Error(err))
		return noCandidatesResult(), nil
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return noCandidatesResult(), nil
		}
		return nil, fmt.Errorf("load requester profile: %w", err)
	}
	if !profile.ExperienceLevel.Valid() {
		return noCandidatesResult(), nil
	}

	radius := s.effectiveRadius(location.MaxTravelDistance)
	raw, err := s.locationRepo.FindWithinRadius(ctx, location, radius)
	if err != nil {
		return nil, fmt.Errorf("geo query: %w", err)
	}
	if len(raw) == 0 {
		return noCandidatesResult(), nil
	}

	candidateIDs := make([]string, 0, len(raw))
	for _, c := range raw {
		candidateIDs = append(candidateIDs, c.UserID)
	}
	levels, err := s.profileRepo.GetLevelsByUserIDs(ctx, candidateIDs)
	if err != nil {
		return nil, fmt.Errorf("load candidate levels: %w", err)
	}

	since := s.now().AddDate(0, 0, -s.params.RecencyExclusionDays)
	recent, err := s.partnershipRepo.RecentPartnerIDs(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("load recent partners: %w", err)
	}

	eligible := filterCandidates(userID, profile.ExperienceLevel, raw, levels, recent)
	best := selectBest(eligible)
	if best == nil {
		return noCandidatesResult(), nil
	}

	if err := s.ensureDependencies(ctx, userID, best.UserID); err != nil {
		return nil, err
	}

	partnership, err := s.partnershipRepo.CreatePending(ctx, userID, best.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrPendingPartnershipExists) {
			return s.resolveConflict(ctx, userID)
		}
		return nil, fmt.Errorf("create pending partnership: %w", err)
	}

	s.logger.Info("partnership created",
		zap.String("partnership_id", partnership.ID),
		zap.String("requester_id", userID),
		zap.String("partner_id", best.UserID),
		zap.Float64("distance_miles", best.DistanceMiles))

	distance := best.DistanceMiles
	return &MatchResult{
		Matched:       true,
		PartnershipID: partnership.ID,
		PartnerID:     best.UserID,
		Partner:       s.partnerSummary(ctx, best.UserID, &distance),
	}, nil
}

// ensureDependencies materializes profile rows for both participants before
// the partnership write, so the insert never fails on the profile foreign
// key. Failures surface as a typed dependency error rather than a silent
// side effect in the write path.
func (s *Service) ensureDependencies(ctx context.Context, requesterID, partnerID string) error {
	for _, id := range []string{requesterID, partnerID} {
		if err := s.profileRepo.EnsureExists(ctx, id); err != nil {
			return fmt.Errorf("%w: user %s: %v", domain.ErrDependencyNotReady, id, err)
		}
	}
	return nil
}

// resolveConflict handles a lost CreatePending race. If a concurrent request
// created a pending partnership for this user, that row is the result. If
// the collision was on the candidate's side only, the requester remains
// unmatched and the caller may simply retry.
func (s *Service) resolveConflict(ctx context.Context, userID string) (*MatchResult, error) {
	winner, err := s.partnershipRepo.GetActivePending(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrPartnershipNotFound) {
			s.logger.Info("candidate claimed concurrently, no pending row for requester",
				zap.String("user_id", userID))
			return noCandidatesResult(), nil
		}
		return nil, fmt.Errorf("resolve pending conflict: %w", err)
	}
	return s.existingResult(ctx, userID, winner), nil
}

func (s *Service) existingResult(ctx context.Context, userID string, p *domain.Partnership) *MatchResult {
	partnerID, _ := p.OtherUserID(userID)
	return &MatchResult{
		Matched:       true,
		Existing:      true,
		PartnershipID: p.ID,
		PartnerID:     partnerID,
		Partner:       s.partnerSummary(ctx, partnerID, nil),
	}
}

// partnerSummary assembles the partner's display data on a best-effort
// basis: a partially populated summary is preferable to failing a match that
// already committed.
func (s *Service) partnerSummary(ctx context.Context, partnerID string, distance *float64) *PartnerSummary {
	summary := &PartnerSummary{UserID: partnerID, DistanceMiles: distance}

	if user, err := s.userRepo.GetByID(ctx, partnerID); err == nil {
		summary.DisplayName = user.DisplayName
	}
	if profile, err := s.profileRepo.GetByUserID(ctx, partnerID); err == nil && profile.ExperienceLevel.Valid() {
		summary.ExperienceLevel = profile.ExperienceLevel
	}
	if location, err := s.locationRepo.GetByUserID(ctx, partnerID); err == nil {
		summary.City = location.City
	}
	return summary
}

func (s *Service) effectiveRadius(maxTravelDistance float64) float64 {
	radius := maxTravelDistance
	if radius <= 0 {
		radius = s.params.DefaultRadiusMiles
	}
	if radius < s.params.MinRadiusMiles {
		radius = s.params.MinRadiusMiles
	}
	if radius > s.params.MaxRadiusMiles {
		radius = s.params.MaxRadiusMiles
	}
	return radius
}

func noCandidatesResult() *MatchResult {
	return &MatchResult{Matched: false, Reason: ReasonNoCandidates}
}
