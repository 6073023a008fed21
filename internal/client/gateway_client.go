package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-gtd/internal/config"
	"github.com/MKhiriev/go-gtd/internal/logger"
	"github.com/MKhiriev/go-gtd/internal/utils"
	"github.com/MKhiriev/go-gtd/models"
	"github.com/go-resty/resty/v2"
)

const sessionHeader = "X-Session-ID"

// HTTPGateway talks to the gateway over REST. The session id travels in the
// X-Session-ID header; cookies are not used.
type HTTPGateway struct {
	client  *utils.HTTPClient
	baseURL string

	mu        sync.RWMutex
	sessionID string

	logger *logger.Logger
}

func NewHTTPGateway(cfg *config.ClientConfig, logger *logger.Logger) (*HTTPGateway, error) {
	baseURL, err := normalizeBaseURL(cfg.GatewayURL)
	if err != nil {
		return nil, fmt.Errorf("invalid gateway url: %w", err)
	}

	return &HTTPGateway{
		client:  utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		baseURL: baseURL,
		logger:  logger,
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
	if u.Host == "" {
		return "", fmt.Errorf("address must include host")
	}
	return strings.TrimRight(u.String(), "/"), nil
}

func (g *HTTPGateway) SessionID() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.sessionID
}

func (g *HTTPGateway) SetSessionID(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sessionID = strings.TrimSpace(id)
}

func (g *HTTPGateway) request(ctx context.Context) *resty.Request {
	req := g.client.R().SetContext(ctx)
	if id := g.SessionID(); id != "" {
		req.SetHeader(sessionHeader, id)
	}
	return req
}

// do runs req and decodes a successful body into result.
func (g *HTTPGateway) do(req *resty.Request, method, path string, result any) error {
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		g.logger.Err(err).Str("path", path).Msg("gateway request failed")
		return fmt.Errorf("%w: %w", ErrUnreachable, err)
	}
	if err := mapHTTPError(resp); err != nil {
		g.logger.Info().Err(err).Str("path", path).Msg("gateway rejected request")
		return err
	}
	return nil
}

func (g *HTTPGateway) Login(ctx context.Context, login, password string) (models.User, error) {
	return g.authenticate(ctx, "/api/auth/login", login, password)
}

func (g *HTTPGateway) Register(ctx context.Context, login, password string) (models.User, error) {
	return g.authenticate(ctx, "/api/auth/register", login, password)
}

func (g *HTTPGateway) authenticate(ctx context.Context, path, login, password string) (models.User, error) {
	var resp models.LoginResponse
	req := g.client.R().SetContext(ctx).
		SetBody(models.Credentials{Login: login, Password: password})

	if err := g.do(req, http.MethodPost, path, &resp); err != nil {
		return models.User{}, err
	}

	g.SetSessionID(resp.SessionID)
	return resp.User, nil
}

// Logout ends the session on the gateway and forgets it locally even when
// the gateway cannot be reached.
func (g *HTTPGateway) Logout(ctx context.Context) error {
	err := g.do(g.request(ctx), http.MethodPost, "/api/auth/logout", nil)
	g.SetSessionID("")
	return err
}

func (g *HTTPGateway) Features(ctx context.Context) (models.Features, error) {
	var features models.Features
	err := g.do(g.request(ctx), http.MethodGet, "/api/features", &features)
	return features, err
}

func (g *HTTPGateway) Stats(ctx context.Context) (models.DashboardStats, error) {
	var stats models.DashboardStats
	err := g.do(g.request(ctx), http.MethodGet, "/api/dashboard/stats", &stats)
	return stats, err
}

func (g *HTTPGateway) Projects(ctx context.Context, view View, q Query) (models.ViewPage[models.ProjectView], error) {
	var page models.ViewPage[models.ProjectView]
	err := g.do(g.request(ctx).SetQueryParamsFromValues(q.values()), http.MethodGet, view.Path(), &page)
	return page, err
}

func (g *HTTPGateway) Tasks(ctx context.Context, view View, q Query) (models.ViewPage[models.TaskView], error) {
	var page models.ViewPage[models.TaskView]
	err := g.do(g.request(ctx).SetQueryParamsFromValues(q.values()), http.MethodGet, view.Path(), &page)
	return page, err
}

func (g *HTTPGateway) Fields(ctx context.Context, q Query) (models.ViewPage[models.FieldView], error) {
	var page models.ViewPage[models.FieldView]
	err := g.do(g.request(ctx).SetQueryParamsFromValues(q.values()), http.MethodGet, ViewFields.Path(), &page)
	return page, err
}

func (g *HTTPGateway) QuickAdd(ctx context.Context, text string) (models.TaskView, error) {
	var task models.TaskView
	req := g.request(ctx).SetBody(models.QuickAddRequest{Text: text})
	err := g.do(req, http.MethodPost, "/api/quick-add", &task)
	return task, err
}

func (g *HTTPGateway) SetTaskDone(ctx context.Context, id int64, done bool) (models.TaskView, error) {
	var task models.TaskView
	req := g.request(ctx).SetBody(map[string]bool{"done_status": done})
	err := g.do(req, http.MethodPut, "/api/tasks/"+strconv.FormatInt(id, 10), &task)
	return task, err
}

func (g *HTTPGateway) SetProjectDone(ctx context.Context, id int64, done bool) (models.ProjectView, error) {
	var project models.ProjectView
	req := g.request(ctx).SetBody(map[string]bool{"done_status": done})
	err := g.do(req, http.MethodPut, "/api/projects/"+strconv.FormatInt(id, 10), &project)
	return project, err
}
