package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-gtd/internal/config"
	"github.com/MKhiriev/go-gtd/internal/events"
	"github.com/MKhiriev/go-gtd/internal/handler"
	"github.com/MKhiriev/go-gtd/internal/logger"
	"github.com/MKhiriev/go-gtd/internal/server"
	"github.com/MKhiriev/go-gtd/internal/service"
	"github.com/MKhiriev/go-gtd/internal/store"
	"github.com/MKhiriev/go-gtd/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("gtd-server").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("gtd-server", cfg.LogLevel)
	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	publisher := events.NewNopPublisher()
	if cfg.Features.Realtime {
		redisClient, err := store.NewRedisClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error connecting to redis")
		}
		if redisClient != nil {
			defer redisClient.Close()
			publisher = events.NewRedisBus(redisClient, log)
		} else {
			log.Warn().Msg("realtime is enabled but no redis address is configured, events are dropped")
		}
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(storages, publisher, buildInfo, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if !cfg.Features.Auth {
		if err := services.UserService.EnsureDefault(ctx, cfg.App.DefaultUserID); err != nil {
			log.Fatal().Err(err).Msg("error provisioning default user")
		}
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
