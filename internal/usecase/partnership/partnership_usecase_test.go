package partnership

import (
	"context"
	"testing"
	"time"

	"github.com/wingmateapp/wingmate-backend/internal/domain"
)

type fakeRepo struct {
	byID map[string]*domain.Partnership
}

func (f *fakeRepo) CreatePending(_ context.Context, userA, userB string) (*domain.Partnership, error) {
	panic("not used")
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*domain.Partnership, error) {
	if p, ok := f.byID[id]; ok {
		return p, nil
	}
	return nil, domain.ErrPartnershipNotFound
}

func (f *fakeRepo) GetActivePending(_ context.Context, userID string) (*domain.Partnership, error) {
	for _, p := range f.byID {
		if p.Status == domain.PartnershipPending && p.HasUser(userID) {
			return p, nil
		}
	}
	return nil, domain.ErrPartnershipNotFound
}

func (f *fakeRepo) RecentPartnerIDs(_ context.Context, _ string, _ time.Time) (map[string]struct{}, error) {
	return map[string]struct{}{}, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id string, status domain.PartnershipStatus) (*domain.Partnership, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrPartnershipNotFound
	}
	if p.Status != domain.PartnershipPending {
		return nil, domain.ErrPartnershipNotPending
	}
	p.Status = status
	return p, nil
}

func newFakeRepo(partnerships ...*domain.Partnership) *fakeRepo {
	f := &fakeRepo{byID: make(map[string]*domain.Partnership)}
	for _, p := range partnerships {
		f.byID[p.ID] = p
	}
	return f
}

func pending(id, a, b string) *domain.Partnership {
	pa, pb := domain.CanonicalPair(a, b)
	return &domain.Partnership{
		ID:           id,
		ParticipantA: pa,
		ParticipantB: pb,
		Status:       domain.PartnershipPending,
	}
}

func TestRespondAccept(t *testing.T) {
	repo := newFakeRepo(pending("p1", "alice", "bob"))
	svc := NewService(repo, nil)

	updated, err := svc.Respond(context.Background(), "alice", "p1", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != domain.PartnershipAccepted {
		t.Errorf("status = %q, want accepted", updated.Status)
	}
}

func TestRespondDecline(t *testing.T) {
	repo := newFakeRepo(pending("p1", "alice", "bob"))
	svc := NewService(repo, nil)

	updated, err := svc.Respond(context.Background(), "bob", "p1", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != domain.PartnershipDeclined {
		t.Errorf("status = %q, want declined", updated.Status)
	}
}

func TestRespondByNonParticipantIsNotFound(t *testing.T) {
	repo := newFakeRepo(pending("p1", "alice", "bob"))
	svc := NewService(repo, nil)

	if _, err := svc.Respond(context.Background(), "mallory", "p1", true); err != domain.ErrPartnershipNotFound {
		t.Fatalf("expected ErrPartnershipNotFound, got %v", err)
	}
}

func TestRespondTwiceFails(t *testing.T) {
	repo := newFakeRepo(pending("p1", "alice", "bob"))
	svc := NewService(repo, nil)

	if _, err := svc.Respond(context.Background(), "alice", "p1", false); err != nil {
		t.Fatalf("first response: %v", err)
	}
	if _, err := svc.Respond(context.Background(), "bob", "p1", true); err != domain.ErrPartnershipNotPending {
		t.Fatalf("expected ErrPartnershipNotPending on second response, got %v", err)
	}
}

func TestGetPendingReturnsActiveRow(t *testing.T) {
	repo := newFakeRepo(pending("p1", "alice", "bob"))
	svc := NewService(repo, nil)

	p, err := svc.GetPending(context.Background(), "bob")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != "p1" {
		t.Errorf("pending id = %q, want p1", p.ID)
	}
}
