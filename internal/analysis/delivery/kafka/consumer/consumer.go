package consumer

import (
	"context"
)

// ConsumeContentSubmitted starts consuming content intake messages.
func (c *consumer) ConsumeContentSubmitted(ctx context.Context) error {
	group, err := c.createConsumerGroup(c.kafkaConfig.ConsumerGroup)
	if err != nil {
		return err
	}
	c.contentSubmittedGroup = group

	handler := &contentSubmittedHandler{
		consumer: c,
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if err := group.ConsumeWithContext(ctx, []string{c.kafkaConfig.IntakeTopic}, handler); err != nil {
					c.l.Errorf(ctx, "Consumer error: %v", err)
				}
			}
		}
	}()

	go func() {
		for err := range group.Errors() {
			c.l.Errorf(ctx, "Consumer group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "Consuming %s", c.kafkaConfig.IntakeTopic)

	return nil
}
