package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	analysisHTTP "moderation-srv/internal/analysis/delivery/http"
	analysisPostgre "moderation-srv/internal/analysis/repository/postgre"
	analysisUsecase "moderation-srv/internal/analysis/usecase"
	"moderation-srv/internal/middleware"
	"moderation-srv/internal/moderation"
)

func (srv *HTTPServer) setupAnalysisDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware, modUC moderation.UseCase) error {
	repo := analysisPostgre.New(srv.postgresDB, srv.l)

	uc := analysisUsecase.New(repo, modUC, srv.l, analysisUsecase.Config{
		Wordlists:               srv.config.Moderation.Wordlists,
		FailOpenOnDecisionError: srv.config.Moderation.FailOpenOnDecisionError,
	})

	handler := analysisHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Analysis domain registered")
	return nil
}
