package http

import (
	"moderation-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.POST("/reports", h.ReportContent)

		moderator := api.Group("")
		moderator.Use(mw.RequireModerator())
		{
			moderator.GET("/reports", h.GetReports)
			moderator.GET("/moderation/queue", h.GetQueue)
			moderator.POST("/moderation/queue/:queue_id/decision", h.ProcessDecision)
		}
	}
}
