package usecase

import (
	"moderation-srv/internal/trust"
	"moderation-srv/internal/trust/repository"
	"moderation-srv/pkg/log"
)

type implUseCase struct {
	repo  repository.PostgresRepository
	cache repository.CacheRepository
	l     log.Logger
}

// New creates a new trust UseCase implementation. cache may be nil, reads
// then always go to Postgres.
func New(
	repo repository.PostgresRepository,
	cache repository.CacheRepository,
	l log.Logger,
) trust.UseCase {
	return &implUseCase{
		repo:  repo,
		cache: cache,
		l:     l,
	}
}
