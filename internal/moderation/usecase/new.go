package usecase

import (
	"moderation-srv/internal/moderation"
	"moderation-srv/internal/moderation/repository"
	"moderation-srv/internal/trust"
	"moderation-srv/pkg/encrypter"
	"moderation-srv/pkg/kafka"
	"moderation-srv/pkg/log"
)

type implUseCase struct {
	repo     repository.PostgresRepository
	trustUC  trust.UseCase
	producer kafka.IProducer
	enc      encrypter.Encrypter
	l        log.Logger
}

// New creates a new moderation UseCase implementation. producer may be nil
// when the deployment has no event bus.
func New(
	repo repository.PostgresRepository,
	trustUC trust.UseCase,
	producer kafka.IProducer,
	enc encrypter.Encrypter,
	l log.Logger,
) moderation.UseCase {
	return &implUseCase{
		repo:     repo,
		trustUC:  trustUC,
		producer: producer,
		enc:      enc,
		l:        l,
	}
}
