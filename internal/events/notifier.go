package events

import (
	"context"
	"time"

	"github.com/MKhiriev/go-gtd/internal/logger"
	"github.com/MKhiriev/go-gtd/models"
)

// Notifier publishes change events on behalf of the services. Failures are
// logged and never returned.
type Notifier struct {
	publisher Publisher
	now       func() time.Time
}

// NewNotifier wraps publisher. A nil publisher drops every event.
func NewNotifier(publisher Publisher) *Notifier {
	if publisher == nil {
		publisher = NewNopPublisher()
	}
	return &Notifier{publisher: publisher, now: time.Now}
}

// Notify publishes "<resource>.<action>" for the given row.
func (n *Notifier) Notify(ctx context.Context, resource, action string, id, userID int64) {
	event := models.NewEvent(resource, action, id, userID, n.now())

	if err := n.publisher.Publish(ctx, event); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("event", event.Type).
			Int64("id", id).
			Int64("user_id", userID).
			Msg("failed to publish event")
	}
}
