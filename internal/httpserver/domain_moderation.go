package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"moderation-srv/internal/middleware"
	"moderation-srv/internal/moderation"
	moderationHTTP "moderation-srv/internal/moderation/delivery/http"
	moderationPostgre "moderation-srv/internal/moderation/repository/postgre"
	moderationUsecase "moderation-srv/internal/moderation/usecase"
	"moderation-srv/internal/trust"
)

func (srv *HTTPServer) setupModerationDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware, trustUC trust.UseCase) (moderation.UseCase, error) {
	repo := moderationPostgre.New(srv.postgresDB, srv.l)

	uc := moderationUsecase.New(repo, trustUC, srv.producer, srv.encrypter, srv.l)

	handler := moderationHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Moderation domain registered")
	return uc, nil
}
