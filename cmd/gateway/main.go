package main

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/MKhiriev/go-gtd/internal/adapter"
	"github.com/MKhiriev/go-gtd/internal/config"
	"github.com/MKhiriev/go-gtd/internal/events"
	"github.com/MKhiriev/go-gtd/internal/gateway"
	"github.com/MKhiriev/go-gtd/internal/logger"
	"github.com/MKhiriev/go-gtd/internal/server"
	"github.com/MKhiriev/go-gtd/internal/session"
	"github.com/MKhiriev/go-gtd/internal/store"
	"github.com/MKhiriev/go-gtd/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetGatewayConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("gtd-gateway").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("gtd-gateway", cfg.LogLevel)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	backend, err := adapter.NewHTTPBackendAdapter(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating backend adapter")
	}

	redisClient, err := store.NewRedisClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to redis")
	}

	deps := gateway.Dependencies{Backend: backend}
	var background []workers.Worker

	if redisClient != nil {
		defer redisClient.Close()

		deps.Sessions = session.NewRedisStore(redisClient, cfg.Gateway.SessionTTL)
		if cfg.Gateway.RateLimit > 0 {
			deps.Limiter = gateway.NewRedisRateLimiter(redisClient, cfg.Gateway.RateLimit, cfg.Gateway.RateWindow)
		}
		if cfg.Features.Realtime {
			deps.Events = events.NewRedisBus(redisClient, log)
		}
	} else {
		log.Warn().Msg("no redis address configured: sessions are kept in memory, rate limiting and realtime are off")

		memory := session.NewMemoryStore(cfg.Gateway.SessionTTL)
		deps.Sessions = memory
		background = append(background,
			workers.NewPeriodic("session-janitor", cfg.Gateway.SweepInterval, memory.Sweep, log))
	}

	gw := gateway.NewGateway(deps, cfg, log)

	srv, err := server.NewGatewayServer(gw.Init(), cfg.Gateway.Address, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	var wg sync.WaitGroup
	wg.Go(func() {
		workers.NewWorkers(background...).Run(ctx)
	})

	srv.RunServer()

	cancel()
	wg.Wait()
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
