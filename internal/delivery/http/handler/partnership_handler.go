package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wingmateapp/wingmate-backend/internal/domain"
)

// PartnershipResponder is the slice of the partnership service the handler
// needs.
type PartnershipResponder interface {
	GetPending(ctx context.Context, userID string) (*domain.Partnership, error)
	Respond(ctx context.Context, userID, partnershipID string, accept bool) (*domain.Partnership, error)
}

type PartnershipHandler struct {
	partnerships PartnershipResponder
}

func NewPartnershipHandler(partnerships PartnershipResponder) *PartnershipHandler {
	return &PartnershipHandler{partnerships: partnerships}
}

// RespondRequest is the accept/decline payload.
type RespondRequest struct {
	Accept *bool `json:"accept" binding:"required"`
}

// GetPending handles GET /partnerships/pending
func (h *PartnershipHandler) GetPending(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	p, err := h.partnerships.GetPending(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrPartnershipNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "no pending partnership"})
			return
		}
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "unavailable"})
		return
	}

	c.JSON(http.StatusOK, p)
}

// Respond handles POST /partnerships/:id/respond
func (h *PartnershipHandler) Respond(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	partnershipID := c.Param("id")
	if _, err := uuid.Parse(partnershipID); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid partnership id"})
		return
	}

	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	p, err := h.partnerships.Respond(c.Request.Context(), userID, partnershipID, *req.Accept)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPartnershipNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "partnership not found"})
		case errors.Is(err, domain.ErrPartnershipNotPending):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "partnership already responded to"})
		case errors.Is(err, domain.ErrInvalidStatusChange):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid status change"})
		default:
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "unavailable"})
		}
		return
	}

	c.JSON(http.StatusOK, p)
}
