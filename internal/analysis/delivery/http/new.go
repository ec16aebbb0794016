package http

import (
	"moderation-srv/internal/analysis"
	"moderation-srv/internal/middleware"
	"moderation-srv/pkg/discord"
	"moderation-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      analysis.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc analysis.UseCase, discord discord.IDiscord) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		discord: discord,
	}
}
