// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-gtd/internal/config"
	"github.com/MKhiriev/go-gtd/internal/logger"
	"github.com/MKhiriev/go-gtd/internal/utils"
	"github.com/MKhiriev/go-gtd/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSignKey = "gateway-test-key"
	testIssuer  = "go-gtd"
)

func newTestAdapter(t *testing.T, serverURL, signKey string) *httpBackendAdapter {
	t.Helper()
	cfg := &config.GatewayConfig{
		App: config.App{
			TokenSignKey:  signKey,
			TokenIssuer:   testIssuer,
			TokenDuration: time.Minute,
		},
		Adapter: config.Adapter{APIURL: serverURL, RequestTimeout: 2 * time.Second},
	}

	a, err := NewHTTPBackendAdapter(cfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpBackendAdapter)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "adds scheme", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "trims slash", raw: "https://api.example.com/", want: "https://api.example.com"},
		{name: "empty", raw: "  ", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDo_MintsTokenAndFiltersRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/tasks", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "false", r.URL.Query().Get("is_done"))
		assert.False(t, r.URL.Query().Has("token"))
		assert.Empty(t, r.Header.Get("Cookie"))
		assert.Equal(t, "trace-1", r.Header.Get(traceIDHeader))

		raw, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		assert.NoError(t, err)
		token, err := utils.ValidateAndParseJWTToken(raw, testSignKey, testIssuer)
		assert.NoError(t, err)
		assert.Equal(t, int64(42), token.UserID)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[],"total":0}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, testSignKey)
	ctx := utils.WithTraceID(context.Background(), "trace-1")

	resp, err := a.Do(ctx, Call{
		UserID: 42,
		Login:  "alice",
		Method: http.MethodGet,
		Path:   "/api/tasks",
		Query:  url.Values{"limit": {"10"}, "is_done": {"false"}, "token": {"secret"}},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.JSONEq(t, `{"items":[],"total":0}`, string(resp.Body))
}

func TestDo_WithoutSignKeySendsNoToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"name":"Inbox"}`, string(body))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":1,"name":"Inbox"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	resp, err := a.Do(context.Background(), Call{
		UserID: 1,
		Method: http.MethodPost,
		Path:   "/api/projects",
		Body:   json.RawMessage(`{"name":"Inbox"}`),
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.Status)
}

func TestDo_MapsStatuses(t *testing.T) {
	tests := []struct {
		status  int
		wantErr error
	}{
		{status: http.StatusBadRequest, wantErr: ErrBadRequest},
		{status: http.StatusUnprocessableEntity, wantErr: ErrBadRequest},
		{status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{status: http.StatusNotFound, wantErr: ErrNotFound},
		{status: http.StatusConflict, wantErr: ErrConflict},
		{status: http.StatusInternalServerError, wantErr: ErrUnexpectedStatus},
		{status: http.StatusServiceUnavailable, wantErr: ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"error":"internal detail"}`))
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL, testSignKey)
			_, err := a.Do(context.Background(), Call{UserID: 1, Method: http.MethodGet, Path: "/api/fields"})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDo_BackendDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	a := newTestAdapter(t, srv.URL, testSignKey)
	_, err := a.Do(context.Background(), Call{UserID: 1, Method: http.MethodGet, Path: "/api/fields"})
	assert.ErrorIs(t, err, ErrBackendUnavailable)
}

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		var creds models.Credentials
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&creds))

		if creds.Password != "secret-pw" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"invalid login or password"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"backend-token","user":{"id":5,"login":"alice"}}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, testSignKey)

	user, err := a.Login(context.Background(), models.Credentials{Login: "alice", Password: "secret-pw"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), user.UserID)
	assert.Equal(t, "alice", user.Login)

	_, err = a.Login(context.Background(), models.Credentials{Login: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/register", r.URL.Path)
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, testSignKey)
	_, err := a.Register(context.Background(), models.Credentials{Login: "alice", Password: "secret-pw"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestPing(t *testing.T) {
	var healthy atomic.Bool
	healthy.Store(true)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !healthy.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, testSignKey)
	assert.NoError(t, a.Ping(context.Background()))

	healthy.Store(false)
	assert.ErrorIs(t, a.Ping(context.Background()), ErrBackendUnavailable)
}

func TestForwardedQuery(t *testing.T) {
	got := forwardedQuery(url.Values{
		"search":   {"milk", "bread"},
		"sort":     {"name"},
		"password": {"x"},
	})
	assert.Equal(t, url.Values{"search": {"milk"}, "sort": {"name"}}, got)
}

func TestForwardedQuery_ResourceFilters(t *testing.T) {
	got := forwardedQuery(url.Values{
		"wait_for":     {"true"},
		"do_today":     {"false"},
		"do_this_week": {"true"},
		"is_reading":   {"true"},
		"limit":        {"5"},
	})
	assert.Equal(t, url.Values{
		"wait_for":     {"true"},
		"do_today":     {"false"},
		"do_this_week": {"true"},
		"is_reading":   {"true"},
		"limit":        {"5"},
	}, got)
}
