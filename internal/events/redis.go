package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-gtd/internal/logger"
	"github.com/MKhiriev/go-gtd/models"
	"github.com/redis/go-redis/v9"
)

const subscriptionBuffer = 16

// RedisBus publishes and subscribes to events over Redis pub/sub.
type RedisBus struct {
	client redis.UniversalClient
	logger *logger.Logger
}

// NewRedisBus wraps a connected Redis client.
func NewRedisBus(client redis.UniversalClient, logger *logger.Logger) *RedisBus {
	return &RedisBus{client: client, logger: logger}
}

// Publish sends the event as JSON on the owner's channel.
func (b *RedisBus) Publish(ctx context.Context, event models.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	if err := b.client.Publish(ctx, Channel(event.UserID), payload).Err(); err != nil {
		return fmt.Errorf("publish %s: %w", event.Type, err)
	}
	return nil
}

func (b *RedisBus) Subscribe(ctx context.Context, userID int64) (<-chan models.Event, error) {
	sub := b.client.Subscribe(ctx, Channel(userID))
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("subscribe user %d: %w", userID, err)
	}

	out := make(chan models.Event, subscriptionBuffer)
	go func() {
		defer close(out)
		defer sub.Close()

		messages := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}

				var event models.Event
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					b.logger.Warn().Err(err).Str("channel", msg.Channel).Msg("dropping malformed event")
					continue
				}

				select {
				case out <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
