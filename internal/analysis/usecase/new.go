package usecase

import (
	"moderation-srv/config"
	"moderation-srv/internal/analysis"
	"moderation-srv/internal/analysis/repository"
	"moderation-srv/internal/moderation"
	"moderation-srv/pkg/log"
)

const (
	defaultBaseScore = 0.5
)

// Config tunes the analyzers and the auto-moderation policy.
type Config struct {
	Wordlists               config.WordlistConfig
	FailOpenOnDecisionError bool
}

type implUseCase struct {
	repo  repository.PostgresRepository
	modUC moderation.UseCase
	l     log.Logger
	cfg   Config
}

// New creates a new analysis UseCase implementation.
func New(
	repo repository.PostgresRepository,
	modUC moderation.UseCase,
	l log.Logger,
	cfg Config,
) analysis.UseCase {
	if len(cfg.Wordlists.Profanity) == 0 {
		cfg.Wordlists = config.DefaultWordlists()
	}

	return &implUseCase{
		repo:  repo,
		modUC: modUC,
		l:     l,
		cfg:   cfg,
	}
}
