package http

import (
	"time"

	"github.com/MKhiriev/go-gtd/internal/config"
	"github.com/MKhiriev/go-gtd/internal/handler/middleware"
	"github.com/MKhiriev/go-gtd/internal/logger"
	"github.com/MKhiriev/go-gtd/internal/service"
)

type Handler struct {
	services *service.Services

	features       config.Features
	defaultUserID  int64
	maxPageSize    int
	requestTimeout time.Duration

	metrics *middleware.Metrics
	logger  *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.ServerConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		features:       cfg.Features,
		defaultUserID:  cfg.App.DefaultUserID,
		maxPageSize:    cfg.App.MaxPageSize,
		requestTimeout: cfg.Server.RequestTimeout,
		metrics:        middleware.NewMetrics("gtd_backend"),
		logger:         logger,
	}
}
