package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/wingmateapp/wingmate-backend/internal/domain"
	"github.com/wingmateapp/wingmate-backend/internal/usecase/matching"
)

type stubMatcher struct {
	result *matching.MatchResult
	err    error

	gotUserID string
}

func (s *stubMatcher) RequestMatch(_ context.Context, userID string) (*matching.MatchResult, error) {
	s.gotUserID = userID
	return s.result, s.err
}

func performMatchRequest(h *MatchHandler, userID string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/match/request", nil)
	if userID != "" {
		c.Set("user_id", userID)
	}
	h.RequestMatch(c)
	return w
}

func TestRequestMatchMatched(t *testing.T) {
	matcher := &stubMatcher{result: &matching.MatchResult{
		Matched:       true,
		PartnershipID: "p1",
		PartnerID:     "partner-1",
	}}
	h := NewMatchHandler(matcher)

	w := performMatchRequest(h, "user-1")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if matcher.gotUserID != "user-1" {
		t.Errorf("matcher called with %q, want user-1", matcher.gotUserID)
	}

	var body matching.MatchResult
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !body.Matched || body.PartnershipID != "p1" || body.PartnerID != "partner-1" {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestRequestMatchNoCandidatesIsOK(t *testing.T) {
	matcher := &stubMatcher{result: &matching.MatchResult{
		Matched: false,
		Reason:  matching.ReasonNoCandidates,
	}}
	h := NewMatchHandler(matcher)

	w := performMatchRequest(h, "user-1")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body matching.MatchResult
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Matched || body.Reason != matching.ReasonNoCandidates {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestRequestMatchUnknownUser(t *testing.T) {
	h := NewMatchHandler(&stubMatcher{err: domain.ErrUserNotFound})

	w := performMatchRequest(h, "ghost")

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestRequestMatchStoreFailure(t *testing.T) {
	h := NewMatchHandler(&stubMatcher{err: errors.New("connection refused")})

	w := performMatchRequest(h, "user-1")

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}
}

func TestRequestMatchMissingIdentity(t *testing.T) {
	matcher := &stubMatcher{}
	h := NewMatchHandler(matcher)

	w := performMatchRequest(h, "")

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if matcher.gotUserID != "" {
		t.Error("matcher should not be called without identity")
	}
}
