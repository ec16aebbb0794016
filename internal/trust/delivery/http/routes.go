package http

import (
	"moderation-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		moderator := api.Group("")
		moderator.Use(mw.RequireModerator())
		{
			moderator.GET("/trust/:user_id", h.GetTrustScore)
			moderator.POST("/trust/:user_id/recompute", h.RecomputeTrustScore)
		}
	}
}
