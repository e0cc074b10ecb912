package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/wingmateapp/wingmate-backend/internal/domain"
)

const testPartnershipID = "6a1b0c2d-0000-0000-0000-000000000009"

type stubPartnerships struct {
	pending *domain.Partnership
	err     error

	gotAccept bool
}

func (s *stubPartnerships) GetPending(_ context.Context, _ string) (*domain.Partnership, error) {
	return s.pending, s.err
}

func (s *stubPartnerships) Respond(_ context.Context, _, _ string, accept bool) (*domain.Partnership, error) {
	s.gotAccept = accept
	return s.pending, s.err
}

func performRespond(h *PartnershipHandler, partnershipID, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(
		http.MethodPost,
		"/api/v1/partnerships/"+partnershipID+"/respond",
		bytes.NewBufferString(body),
	)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: partnershipID}}
	c.Set("user_id", "user-1")
	h.Respond(c)
	return w
}

func TestRespondAccept(t *testing.T) {
	stub := &stubPartnerships{pending: &domain.Partnership{
		ID:     testPartnershipID,
		Status: domain.PartnershipAccepted,
	}}
	h := NewPartnershipHandler(stub)

	w := performRespond(h, testPartnershipID, `{"accept": true}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if !stub.gotAccept {
		t.Error("accept flag not forwarded")
	}
}

func TestRespondDecline(t *testing.T) {
	stub := &stubPartnerships{pending: &domain.Partnership{
		ID:     testPartnershipID,
		Status: domain.PartnershipDeclined,
	}}
	h := NewPartnershipHandler(stub)

	w := performRespond(h, testPartnershipID, `{"accept": false}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if stub.gotAccept {
		t.Error("decline forwarded as accept")
	}
}

func TestRespondInvalidID(t *testing.T) {
	h := NewPartnershipHandler(&stubPartnerships{})

	w := performRespond(h, "not-a-uuid", `{"accept": true}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestRespondMissingBody(t *testing.T) {
	h := NewPartnershipHandler(&stubPartnerships{})

	w := performRespond(h, testPartnershipID, `{}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestRespondErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", domain.ErrPartnershipNotFound, http.StatusNotFound},
		{"already responded", domain.ErrPartnershipNotPending, http.StatusConflict},
		{"store down", context.DeadlineExceeded, http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewPartnershipHandler(&stubPartnerships{err: tt.err})
			w := performRespond(h, testPartnershipID, `{"accept": true}`)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestGetPendingNone(t *testing.T) {
	h := NewPartnershipHandler(&stubPartnerships{err: domain.ErrPartnershipNotFound})

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/partnerships/pending", nil)
	c.Set("user_id", "user-1")
	h.GetPending(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
