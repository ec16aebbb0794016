package consumer

import (
	"context"
	"fmt"

	analysisConsumer "moderation-srv/internal/analysis/delivery/kafka/consumer"
	analysisPostgre "moderation-srv/internal/analysis/repository/postgre"
	analysisUsecase "moderation-srv/internal/analysis/usecase"
	moderationPostgre "moderation-srv/internal/moderation/repository/postgre"
	moderationUsecase "moderation-srv/internal/moderation/usecase"
	trustRepo "moderation-srv/internal/trust/repository"
	trustPostgre "moderation-srv/internal/trust/repository/postgre"
	trustRedis "moderation-srv/internal/trust/repository/redis"
	trustUsecase "moderation-srv/internal/trust/usecase"
)

// domainConsumers holds references to all domain consumers for cleanup (interface, like http.Handler)
type domainConsumers struct {
	analysisConsumer analysisConsumer.Consumer
}

// setupDomains initializes all domain layers (repositories, usecases, consumers)
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	// Trust domain feeds moderation decisions; cache is optional.
	var cache trustRepo.CacheRepository
	if srv.redisClient != nil {
		cache = trustRedis.New(srv.redisClient, srv.l)
	}
	trustUC := trustUsecase.New(trustPostgre.New(srv.postgresDB, srv.l), cache, srv.l)

	modUC := moderationUsecase.New(
		moderationPostgre.New(srv.postgresDB, srv.l),
		trustUC,
		srv.kafkaProducer,
		srv.encrypter,
		srv.l,
	)

	analysisUC := analysisUsecase.New(
		analysisPostgre.New(srv.postgresDB, srv.l),
		modUC,
		srv.l,
		analysisUsecase.Config{
			Wordlists:               srv.config.Moderation.Wordlists,
			FailOpenOnDecisionError: srv.config.Moderation.FailOpenOnDecisionError,
		},
	)

	analysisCons, err := analysisConsumer.New(analysisConsumer.Config{
		Logger:      srv.l,
		KafkaConfig: srv.kafkaConfig,
		UseCase:     analysisUC,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create analysis consumer: %w", err)
	}

	srv.l.Infof(ctx, "Analysis domain initialized")

	return &domainConsumers{
		analysisConsumer: analysisCons,
	}, nil
}

// startConsumers starts all domain consumers in background goroutines
func (srv *ConsumerServer) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	if err := consumers.analysisConsumer.ConsumeContentSubmitted(ctx); err != nil {
		return fmt.Errorf("failed to start analysis consumer: %w", err)
	}

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// stopConsumers gracefully stops all domain consumers
func (srv *ConsumerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	if consumers.analysisConsumer != nil {
		if err := consumers.analysisConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing analysis consumer: %v", err)
		}
	}

	srv.l.Infof(ctx, "All consumers stopped")
}
