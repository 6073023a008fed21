// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

func (cfg *ServerConfig) validate() error {
	if cfg.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if err := validateApp(cfg.App, cfg.Features); err != nil {
		return err
	}

	if cfg.Features.Realtime && cfg.Redis.Address == "" {
		return fmt.Errorf("%w: realtime requires a redis address", ErrInvalidStorageConfigs)
	}

	return nil
}

func (cfg *GatewayConfig) validate() error {
	if cfg.Gateway.Address == "" || cfg.Gateway.SessionTTL <= 0 || cfg.Gateway.SweepInterval <= 0 {
		return ErrInvalidGatewayConfigs
	}

	if cfg.Gateway.RateLimit < 0 || (cfg.Gateway.RateLimit > 0 && cfg.Gateway.RateWindow <= 0) {
		return fmt.Errorf("%w: rate limit needs a positive window", ErrInvalidGatewayConfigs)
	}

	if cfg.Adapter.APIURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if err := validateApp(cfg.App, cfg.Features); err != nil {
		return err
	}

	if cfg.Features.Realtime && cfg.Redis.Address == "" {
		return fmt.Errorf("%w: realtime requires a redis address", ErrInvalidStorageConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.DSN == "" || strings.Contains(cfg.DSN, ":memory:") {
		return fmt.Errorf("%w: a file-backed preferences DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.GatewayURL == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidClientConfigs
	}

	if cfg.PageSize < 1 || cfg.PageSize > cfg.MaxPageSize {
		return fmt.Errorf("%w: page size must be within 1..%d", ErrInvalidClientConfigs, cfg.MaxPageSize)
	}

	return nil
}

func validateApp(app App, features Features) error {
	if app.MaxPageSize < 1 {
		return fmt.Errorf("%w: max page size must be positive", ErrInvalidAppConfigs)
	}

	if features.Auth {
		if app.TokenSignKey == "" || app.TokenIssuer == "" || app.TokenDuration <= 0 {
			return fmt.Errorf("%w: auth requires token sign key, issuer and duration", ErrInvalidAppConfigs)
		}
		return nil
	}

	if app.DefaultUserID < 1 {
		return fmt.Errorf("%w: default user id must be positive", ErrInvalidAppConfigs)
	}

	return nil
}
