// Package gateway is the edge HTTP layer between presentation clients and
// the backend API. It owns login sessions, rate limiting and the reshaping
// of backend records into the view shapes clients render.
package gateway

import (
	"time"

	"github.com/MKhiriev/go-gtd/internal/adapter"
	"github.com/MKhiriev/go-gtd/internal/config"
	"github.com/MKhiriev/go-gtd/internal/events"
	"github.com/MKhiriev/go-gtd/internal/handler/middleware"
	"github.com/MKhiriev/go-gtd/internal/logger"
	"github.com/MKhiriev/go-gtd/internal/session"
)

// Dependencies are the collaborators of a Gateway. Limiter and Events may be
// nil: rate limiting is then skipped and /api/events is not served.
type Dependencies struct {
	Backend  adapter.BackendAdapter
	Sessions session.Store
	Limiter  RateLimiter
	Events   events.Subscriber
}

type Gateway struct {
	backend  adapter.BackendAdapter
	sessions session.Store
	limiter  RateLimiter
	events   events.Subscriber

	features      config.Features
	defaultUserID int64
	sessionTTL    time.Duration
	secureCookie  bool

	metrics *middleware.Metrics
	logger  *logger.Logger
}

func NewGateway(deps Dependencies, cfg *config.GatewayConfig, logger *logger.Logger) *Gateway {
	logger.Info().
		Bool("auth", cfg.Features.Auth).
		Bool("realtime", cfg.Features.Realtime).
		Bool("rate_limit", deps.Limiter != nil).
		Msg("gateway created")

	return &Gateway{
		backend:       deps.Backend,
		sessions:      deps.Sessions,
		limiter:       deps.Limiter,
		events:        deps.Events,
		features:      cfg.Features,
		defaultUserID: cfg.App.DefaultUserID,
		sessionTTL:    cfg.Gateway.SessionTTL,
		secureCookie:  cfg.Gateway.SecureCookie,
		metrics:       middleware.NewMetrics("gtd_gateway"),
		logger:        logger,
	}
}
