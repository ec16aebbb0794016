package http

import (
	"moderation-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.POST("/content/analyze", h.Analyze)
	}

	// Service-to-service intake, keyed rather than user-authenticated.
	internal := r.Group("/internal/api/v1")
	internal.Use(mw.InternalAuth())
	{
		internal.POST("/content/analyze", h.AnalyzeInternal)
	}
}
