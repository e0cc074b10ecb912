package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wingmateapp/wingmate-backend/internal/domain"
	"github.com/wingmateapp/wingmate-backend/internal/usecase/matching"
)

// MatchRequester is the slice of the matching service the handler needs.
type MatchRequester interface {
	RequestMatch(ctx context.Context, userID string) (*matching.MatchResult, error)
}

type MatchHandler struct {
	matcher MatchRequester
}

func NewMatchHandler(matcher MatchRequester) *MatchHandler {
	return &MatchHandler{matcher: matcher}
}

// RequestMatch handles POST /match/request. The caller's identity comes from
// the auth middleware; no request body is needed. Absence of candidates is a
// 200 with matched=false, never an error status.
func (h *MatchHandler) RequestMatch(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	result, err := h.matcher.RequestMatch(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "not_found"})
			return
		}
		// Store failures are retryable: the throttle makes a repeated
		// RequestMatch safe.
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "unavailable"})
		return
	}

	c.JSON(http.StatusOK, result)
}
