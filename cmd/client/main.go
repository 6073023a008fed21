package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-gtd/internal/client"
	"github.com/MKhiriev/go-gtd/internal/config"
	"github.com/MKhiriev/go-gtd/internal/logger"
	"github.com/MKhiriev/go-gtd/internal/store"
	"github.com/MKhiriev/go-gtd/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, errorMessage(err))
		os.Exit(1)
	}
}

// runtime is everything a command needs: configuration, the local
// preference store and a gateway client carrying the saved session.
type runtime struct {
	cfg      *config.ClientConfig
	log      *logger.Logger
	storages *store.ClientStorages
	prefs    *client.PreferenceStore
	api      *client.HTTPGateway
}

func newRuntime(ctx context.Context, override *config.StructuredConfig) (*runtime, error) {
	cfg, err := config.GetClientConfig(override)
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewClientLogger("gtd-client", cfg.LogDir, cfg.LogLevel)

	storages, err := store.NewClientStorages(ctx, cfg.DSN, log)
	if err != nil {
		return nil, fmt.Errorf("error creating local storage: %w", err)
	}

	api, err := client.NewHTTPGateway(cfg, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("error creating gateway client: %w", err)
	}

	prefs := client.NewPreferenceStore(storages.PreferenceRepository)
	saved, err := prefs.Load(ctx, client.Preferences{})
	if err != nil {
		log.Warn().Err(err).Msg("saved session not loaded")
	}
	api.SetSessionID(saved.SessionID)

	return &runtime{cfg: cfg, log: log, storages: storages, prefs: prefs, api: api}, nil
}

func (r *runtime) Close() {
	if err := r.storages.Close(); err != nil {
		r.log.Error().Err(err).Msg("error closing local storage")
	}
}

// requireSession fails early when the gateway requires a login and none is
// saved.
func (r *runtime) requireSession(ctx context.Context) error {
	if r.api.SessionID() != "" {
		return nil
	}
	features, err := r.api.Features(ctx)
	if err != nil {
		return err
	}
	if features.Auth {
		return errNotLoggedIn
	}
	return nil
}

var errNotLoggedIn = errors.New("not logged in, run `gtd login` first")

func buildInfo() models.AppBuildInfo {
	return models.NewAppBuildInfo(valueOrNA(buildVersion), valueOrNA(buildDate), valueOrNA(buildCommit))
}

func valueOrNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}

// errorMessage keeps gateway failures generic and shows local errors as is.
func errorMessage(err error) string {
	gatewayErrors := []error{
		client.ErrUnauthorized, client.ErrNotFound, client.ErrInvalidRequest, client.ErrConflict,
		client.ErrTooManyRequests, client.ErrRequestFailed, client.ErrUnreachable,
	}
	for _, target := range gatewayErrors {
		if errors.Is(err, target) {
			return client.UserMessage(err)
		}
	}
	return err.Error()
}
