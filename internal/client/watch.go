package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-gtd/models"
	"github.com/gorilla/websocket"
)

// eventsURL turns the gateway base URL into the websocket events endpoint.
func eventsURL(baseURL string) string {
	switch {
	case strings.HasPrefix(baseURL, "https://"):
		return "wss://" + strings.TrimPrefix(baseURL, "https://") + "/api/events"
	case strings.HasPrefix(baseURL, "http://"):
		return "ws://" + strings.TrimPrefix(baseURL, "http://") + "/api/events"
	default:
		return baseURL + "/api/events"
	}
}

func (g *HTTPGateway) Watch(ctx context.Context, handle func(models.Event)) error {
	header := http.Header{}
	if id := g.SessionID(); id != "" {
		header.Set(sessionHeader, id)
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, eventsURL(g.baseURL), header)
	if err != nil {
		if resp != nil {
			switch resp.StatusCode {
			case http.StatusUnauthorized:
				return ErrUnauthorized
			case http.StatusNotFound:
				return fmt.Errorf("%w: realtime updates are disabled", ErrNotFound)
			}
		}
		return fmt.Errorf("%w: %w", ErrUnreachable, err)
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	for {
		var event models.Event
		if err := conn.ReadJSON(&event); err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) ||
				websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("error reading event: %w", err)
		}
		handle(event)
	}
}
