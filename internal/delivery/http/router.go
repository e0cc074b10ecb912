package http

import (
	"github.com/gin-gonic/gin"

	"github.com/wingmateapp/wingmate-backend/internal/delivery/http/handler"
	"github.com/wingmateapp/wingmate-backend/internal/delivery/http/middleware"
)

type Router struct {
	matchHandler       *handler.MatchHandler
	partnershipHandler *handler.PartnershipHandler
	authMiddleware     *middleware.AuthMiddleware
	rateLimit          *middleware.RateLimitMiddleware
}

func NewRouter(
	matchHandler *handler.MatchHandler,
	partnershipHandler *handler.PartnershipHandler,
	authMiddleware *middleware.AuthMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
) *Router {
	return &Router{
		matchHandler:       matchHandler,
		partnershipHandler: partnershipHandler,
		authMiddleware:     authMiddleware,
		rateLimit:          rateLimit,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.Default()

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	{
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			match := protected.Group("/match")
			{
				match.POST("/request", r.rateLimit.LimitMatchRequests(), r.matchHandler.RequestMatch)
			}

			partnerships := protected.Group("/partnerships")
			{
				partnerships.GET("/pending", r.partnershipHandler.GetPending)
				partnerships.POST("/:id/respond", r.partnershipHandler.Respond)
			}
		}
	}

	return router
}
