package consumer

import (
	"fmt"
)

// New creates a new consumer server with dependency validation
func New(cfg Config) (*ConsumerServer, error) {
	srv := &ConsumerServer{
		l:             cfg.Logger,
		kafkaConfig:   cfg.KafkaConfig,
		config:        cfg.AppConfig,
		postgresDB:    cfg.PostgresDB,
		redisClient:   cfg.RedisClient,
		kafkaProducer: cfg.KafkaProducer,
		encrypter:     cfg.Encrypter,
		discord:       cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
// redisClient, kafkaProducer and discord are optional; the engine degrades
// without them.
func (srv *ConsumerServer) validate() error {
	if srv.l == nil {
		return fmt.Errorf("logger is required")
	}
	if len(srv.kafkaConfig.Brokers) == 0 {
		return fmt.Errorf("kafka brokers are required")
	}
	if srv.config == nil {
		return fmt.Errorf("app config is required")
	}

	if srv.postgresDB == nil {
		return fmt.Errorf("postgres db is required")
	}
	if srv.encrypter == nil {
		return fmt.Errorf("encrypter is required")
	}

	return nil
}
