// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package events carries change notifications from the backend to
// realtime subscribers over Redis pub/sub.
package events

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-gtd/models"
)

// Publisher delivers change events.
type Publisher interface {
	Publish(ctx context.Context, event models.Event) error
}

// Subscriber streams the events of one user. The returned channel is closed
// once ctx is done or the subscription breaks.
type Subscriber interface {
	Subscribe(ctx context.Context, userID int64) (<-chan models.Event, error)
}

// Channel is the pub/sub channel of a user's events.
func Channel(userID int64) string {
	return fmt.Sprintf("gtd:events:%d", userID)
}

type nopPublisher struct{}

// NewNopPublisher returns a Publisher that drops every event.
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) Publish(context.Context, models.Event) error {
	return nil
}
