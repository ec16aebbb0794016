package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"moderation-srv/internal/middleware"
	"moderation-srv/internal/trust"
	trustHTTP "moderation-srv/internal/trust/delivery/http"
	"moderation-srv/internal/trust/repository"
	trustPostgre "moderation-srv/internal/trust/repository/postgre"
	trustRedis "moderation-srv/internal/trust/repository/redis"
	trustUsecase "moderation-srv/internal/trust/usecase"
)

func (srv *HTTPServer) setupTrustDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) (trust.UseCase, error) {
	repo := trustPostgre.New(srv.postgresDB, srv.l)

	var cache repository.CacheRepository
	if srv.redisClient != nil {
		cache = trustRedis.New(srv.redisClient, srv.l)
	}

	uc := trustUsecase.New(repo, cache, srv.l)

	handler := trustHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Trust domain registered")
	return uc, nil
}
