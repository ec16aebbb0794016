package consumer

import (
	"context"

	"github.com/IBM/sarama"
)

type contentSubmittedHandler struct {
	consumer *consumer
}

func (h *contentSubmittedHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *contentSubmittedHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *contentSubmittedHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		if err := h.consumer.handleContentSubmittedMessage(msg); err != nil {
			h.consumer.l.Errorf(context.Background(), "analysis.delivery.kafka.consumer.ConsumeContentSubmitted: Failed to process message: %v", err)
			continue
		}
		session.MarkMessage(msg, "")
	}
	return nil
}
