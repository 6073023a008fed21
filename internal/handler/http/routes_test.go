// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-gtd/internal/service"
	"github.com/MKhiriev/go-gtd/models"
	"github.com/stretchr/testify/assert"
)

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func TestRoutes_Version(t *testing.T) {
	h := newTestHandler(t, &service.Services{
		AppInfoService: &fakeAppInfoService{version: models.VersionResponse{Version: "1.2.3", Commit: "abc"}},
	}, testOptions{})

	rr := serve(h, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"version":"1.2.3","commit":"abc","date":""}`, rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get("X-Trace-ID"))
}

func TestRoutes_Health(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "healthy", code: http.StatusOK},
		{name: "database down", err: errors.New("dial tcp: refused"), code: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, &service.Services{HealthService: &fakeHealthService{err: tt.err}}, testOptions{})

			rr := serve(h, httptest.NewRequest(http.MethodGet, "/health", nil))
			assert.Equal(t, tt.code, rr.Code)
		})
	}
}

func TestRoutes_Metrics(t *testing.T) {
	h := newTestHandler(t, &service.Services{}, testOptions{})
	router := h.Init()

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/version", nil))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `gtd_backend_http_requests_total{method="GET",route="/api/version",status="200"} 1`)
}

func TestRoutes_UnknownPathAndMethod(t *testing.T) {
	h := newTestHandler(t, &service.Services{}, testOptions{})

	rr := serve(h, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, rr.Body.String())

	rr = serve(h, httptest.NewRequest(http.MethodPatch, "/api/version", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, "GET", rr.Header().Get("Allow"))
}

func TestRoutes_ExportDisabled(t *testing.T) {
	h := newTestHandler(t, &service.Services{}, testOptions{})

	rr := serve(h, httptest.NewRequest(http.MethodGet, "/api/export", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, rr.Body.String())
}
