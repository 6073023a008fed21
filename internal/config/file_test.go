package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile_JSON(t *testing.T) {
	path := writeTempFile(t, "gtd.json", `{
		"app": {"token_sign_key": "k", "token_duration": "10m", "max_page_size": 80},
		"features": {"auth": true, "export_import": true},
		"storage": {"db": {"dsn": "postgres://json"}, "redis": {"address": "r:6379", "db": 1}},
		"gateway": {"session_ttl": "2h", "rate_limit": 10, "rate_window": 60000000000},
		"client": {"page_size": 30}
	}`)

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.Equal(t, "k", cfg.App.TokenSignKey)
	assert.Equal(t, 10*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, 80, cfg.App.MaxPageSize)
	assert.True(t, cfg.Features.Auth)
	assert.True(t, cfg.Features.ExportImport)
	assert.Equal(t, "postgres://json", cfg.Storage.DB.DSN)
	assert.Equal(t, 1, cfg.Storage.Redis.DB)
	assert.Equal(t, 2*time.Hour, cfg.Gateway.SessionTTL)
	assert.Equal(t, 10, cfg.Gateway.RateLimit)
	assert.Equal(t, time.Minute, cfg.Gateway.RateWindow)
	assert.Equal(t, 30, cfg.Client.PageSize)
}

func TestParseFile_YAML(t *testing.T) {
	path := writeTempFile(t, "gtd.yaml", `
app:
  token_issuer: yaml-issuer
  token_duration: 90s
server:
  http_address: localhost:9000
  request_timeout: 20s
adapter:
  api_url: http://backend:8080
log_level: error
`)

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.Equal(t, "yaml-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 90*time.Second, cfg.App.TokenDuration)
	assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "http://backend:8080", cfg.Adapter.APIURL)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestParseFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "broken json", file: "c.json", content: `{"app":`},
		{name: "bad json duration", file: "c.json", content: `{"app":{"token_duration":"forever"}}`},
		{name: "bad yaml duration", file: "c.yml", content: "app:\n  token_duration: forever\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFile(writeTempFile(t, tt.file, tt.content))
			assert.Error(t, err)
		})
	}
}
