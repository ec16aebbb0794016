package consumer

import (
	"context"
	"fmt"

	"moderation-srv/config"
	"moderation-srv/internal/analysis"
	pkgKafka "moderation-srv/pkg/kafka"
	"moderation-srv/pkg/log"
)

// Config holds the configuration for the content intake consumer.
type Config struct {
	Logger      log.Logger
	KafkaConfig config.KafkaConfig
	UseCase     analysis.UseCase
}

// Consumer manages the Kafka consumer group for the analysis domain.
type Consumer interface {
	ConsumeContentSubmitted(ctx context.Context) error
	Close() error
}

type consumer struct {
	l           log.Logger
	kafkaConfig config.KafkaConfig
	uc          analysis.UseCase

	contentSubmittedGroup pkgKafka.IConsumer
}

// New creates a new analysis consumer.
func New(cfg Config) (Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	if len(cfg.KafkaConfig.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are required")
	}

	return &consumer{
		l:           cfg.Logger,
		kafkaConfig: cfg.KafkaConfig,
		uc:          cfg.UseCase,
	}, nil
}

// Close closes all consumer groups.
func (c *consumer) Close() error {
	if c.contentSubmittedGroup != nil {
		if err := c.contentSubmittedGroup.Close(); err != nil {
			return fmt.Errorf("failed to close content submitted group: %w", err)
		}
	}

	return nil
}

func (c *consumer) createConsumerGroup(groupID string) (pkgKafka.IConsumer, error) {
	group, err := pkgKafka.NewConsumer(pkgKafka.ConsumerConfig{
		Brokers: c.kafkaConfig.Brokers,
		GroupID: groupID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group %s: %w", groupID, err)
	}

	return group, nil
}
