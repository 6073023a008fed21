package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func builtDefaults(t *testing.T, override *StructuredConfig) *StructuredConfig {
	t.Helper()
	cfg, err := newConfigBuilder().withOverride(override).build()
	require.NoError(t, err)
	return cfg
}

func TestServerConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *StructuredConfig
		wantErr error
	}{
		{
			name: "auth off needs only dsn",
			cfg:  &StructuredConfig{Storage: Storage{DB: DB{DSN: "postgres://db"}}},
		},
		{
			name:    "missing dsn",
			cfg:     &StructuredConfig{},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "auth on without sign key",
			cfg: &StructuredConfig{
				Features: Features{Auth: true},
				Storage:  Storage{DB: DB{DSN: "postgres://db"}},
			},
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name: "auth on with sign key",
			cfg: &StructuredConfig{
				Features: Features{Auth: true},
				App:      App{TokenSignKey: "key"},
				Storage:  Storage{DB: DB{DSN: "postgres://db"}},
			},
		},
		{
			name: "realtime without redis",
			cfg: &StructuredConfig{
				Features: Features{Realtime: true},
				Storage:  Storage{DB: DB{DSN: "postgres://db"}},
			},
			wantErr: ErrInvalidStorageConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := builtDefaults(t, tt.cfg).ServerView().validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestGatewayConfig_Validate(t *testing.T) {
	ok := builtDefaults(t, nil).GatewayView()
	assert.NoError(t, ok.validate())

	limited := builtDefaults(t, &StructuredConfig{Gateway: Gateway{RateLimit: 5}}).GatewayView()
	assert.NoError(t, limited.validate())
	assert.Equal(t, time.Minute, limited.Gateway.RateWindow)

	negative := builtDefaults(t, &StructuredConfig{Gateway: Gateway{RateLimit: -1}}).GatewayView()
	assert.ErrorIs(t, negative.validate(), ErrInvalidGatewayConfigs)
}

func TestClientConfig_Validate(t *testing.T) {
	ok := builtDefaults(t, nil).ClientView()
	assert.NoError(t, ok.validate())
	assert.Equal(t, 200, ok.MaxPageSize)

	memory := builtDefaults(t, &StructuredConfig{Client: Client{DSN: "file::memory:"}}).ClientView()
	assert.ErrorIs(t, memory.validate(), ErrInvalidStorageConfigs)

	tooBig := builtDefaults(t, &StructuredConfig{Client: Client{PageSize: 500}}).ClientView()
	assert.ErrorIs(t, tooBig.validate(), ErrInvalidClientConfigs)
}

func TestGetClientConfig_OverrideWins(t *testing.T) {
	t.Setenv("CLIENT_GATEWAY_URL", "http://from-env")

	cfg, err := GetClientConfig(&StructuredConfig{Client: Client{GatewayURL: "http://from-flag"}})
	require.NoError(t, err)
	assert.Equal(t, "http://from-flag", cfg.GatewayURL)
}
