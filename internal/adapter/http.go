// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-gtd/internal/config"
	"github.com/MKhiriev/go-gtd/internal/logger"
	"github.com/MKhiriev/go-gtd/internal/utils"
	"github.com/MKhiriev/go-gtd/models"
	"github.com/go-resty/resty/v2"
)

const traceIDHeader = "X-Trace-ID"

// forwardedParams are the only query parameters passed on to the backend.
var forwardedParams = []string{
	"limit", "offset", "search", "q", "is_done", "sort", "order", "project_id", "field_id",
	"do_today", "do_this_week", "wait_for", "is_reading",
}

type httpBackendAdapter struct {
	client *utils.HTTPClient
	minter tokenMinter
	logger *logger.Logger
}

// NewHTTPBackendAdapter builds a resty adapter rooted at cfg.Adapter.APIURL.
// Tokens are signed with the shared App sign key and issuer.
func NewHTTPBackendAdapter(cfg *config.GatewayConfig, logger *logger.Logger) (BackendAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.Adapter.APIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter api url: %w", err)
	}

	duration := cfg.App.TokenDuration
	if duration <= 0 {
		duration = time.Minute
	}

	return &httpBackendAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.Adapter.RequestTimeout),
		minter: tokenMinter{
			issuer:   cfg.App.TokenIssuer,
			signKey:  cfg.App.TokenSignKey,
			duration: duration,
		},
		logger: logger.WithComponent("adapter"),
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpBackendAdapter) Register(ctx context.Context, creds models.Credentials) (models.User, error) {
	return h.authenticate(ctx, "/api/auth/register", creds)
}

func (h *httpBackendAdapter) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	return h.authenticate(ctx, "/api/auth/login", creds)
}

func (h *httpBackendAdapter) authenticate(ctx context.Context, path string, creds models.Credentials) (models.User, error) {
	var authResponse models.AuthResponse

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&authResponse).
		Post(path)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return authResponse.User, nil
}

func (h *httpBackendAdapter) Do(ctx context.Context, call Call) (Response, error) {
	req := h.request(ctx).SetQueryParamsFromValues(forwardedQuery(call.Query))

	if h.minter.enabled() {
		token, err := h.minter.mint(call.UserID, call.Login)
		if err != nil {
			return Response{}, err
		}
		req.SetAuthToken(token)
	}

	if len(call.Body) > 0 {
		req.SetHeader("Content-Type", "application/json").SetBody([]byte(call.Body))
	}

	resp, err := req.Execute(call.Method, call.Path)
	if err != nil {
		return Response{}, fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return Response{}, err
	}

	h.logger.Debug().
		Str("method", call.Method).
		Str("path", call.Path).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("backend call")

	return Response{Status: resp.StatusCode(), Body: json.RawMessage(resp.Body())}, nil
}

func (h *httpBackendAdapter) Ping(ctx context.Context) error {
	resp, err := h.request(ctx).Get("/health")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("%w: health status %d", ErrBackendUnavailable, resp.StatusCode())
	}
	return nil
}

func (h *httpBackendAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if traceID := utils.GetTraceIDFromContext(ctx); traceID != "" {
		req.SetHeader(traceIDHeader, traceID)
	}
	return req
}

func forwardedQuery(query url.Values) url.Values {
	forwarded := url.Values{}
	for _, name := range forwardedParams {
		if values, ok := query[name]; ok && len(values) > 0 {
			forwarded.Set(name, values[0])
		}
	}
	return forwarded
}
