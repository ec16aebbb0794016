package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	"moderation-srv/internal/analysis"
	kafkaDelivery "moderation-srv/internal/analysis/delivery/kafka"
	"moderation-srv/internal/model"
	"moderation-srv/pkg/scope"
)

// handleContentSubmittedMessage receives a message, normalizes scope + input,
// delegates to the usecase (no business logic here).
func (c *consumer) handleContentSubmittedMessage(msg *sarama.ConsumerMessage) error {
	ctx := context.Background()

	c.l.Infof(ctx, "analysis.delivery.kafka.consumer.handleContentSubmittedMessage: Processing message from partition %d, offset %d",
		msg.Partition, msg.Offset)

	var message kafkaDelivery.ContentSubmittedMessage
	if err := json.Unmarshal(msg.Value, &message); err != nil {
		c.l.Warnf(ctx, "analysis.delivery.kafka.consumer.handleContentSubmittedMessage: Invalid message format (skipping): %v", err)
		return nil // Skip invalid messages
	}

	if message.ContentType == "" || message.ContentID == "" {
		c.l.Warnf(ctx, "analysis.delivery.kafka.consumer.handleContentSubmittedMessage: Invalid message: missing required fields (skipping)")
		return nil
	}

	input := toAnalyzeInput(message)

	// System scope for background processing.
	sc := model.Scope{
		UserID: "system",
		Role:   "system",
	}
	ctx = scope.SetScopeToContext(ctx, sc)

	output, err := c.uc.AnalyzeContent(ctx, sc, input)
	if err != nil {
		c.l.Errorf(ctx, "analysis.delivery.kafka.consumer.handleContentSubmittedMessage: usecase AnalyzeContent failed: %v", err)
		return fmt.Errorf("usecase error: %w", err)
	}

	c.l.Infof(ctx, "analysis.delivery.kafka.consumer.handleContentSubmittedMessage: Successfully processed %s/%s: verdicts=%d, action=%s",
		message.ContentType, message.ContentID, len(output.Verdicts), output.Action)
	return nil
}

func toAnalyzeInput(msg kafkaDelivery.ContentSubmittedMessage) analysis.AnalyzeInput {
	return analysis.AnalyzeInput{
		ContentType: model.ContentType(msg.ContentType),
		ContentID:   msg.ContentID,
		Content:     msg.Text,
		AuthorID:    msg.AuthorID,
	}
}
