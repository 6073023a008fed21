package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_EmptyBuilderYieldsDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)

	assert.Equal(t, int64(1), cfg.App.DefaultUserID)
	assert.Equal(t, 200, cfg.App.MaxPageSize)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 24*time.Hour, cfg.Gateway.SessionTTL)
	assert.Equal(t, 20, cfg.Client.PageSize)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{App: App{Version: "2.0.0", TokenIssuer: "issuer"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
}

func TestBuild_ExplicitValueBeatsDefault(t *testing.T) {
	b := newConfigBuilder().withOverride(&StructuredConfig{App: App{MaxPageSize: 50}})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.App.MaxPageSize)
}

func TestWithFile_UsesPathFromEarlierSource(t *testing.T) {
	path := writeTempFile(t, "cfg.json", `{"app":{"version":"from-file"},"server":{"request_timeout":"5s"}}`)

	cfg, err := newConfigBuilder().
		withOverride(&StructuredConfig{JSONFilePath: path}).
		withFile().
		build()
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.App.Version)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
}

func TestWithFile_MissingFileIsError(t *testing.T) {
	_, err := newConfigBuilder().
		withOverride(&StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "nope.json")}).
		withFile().
		build()
	assert.Error(t, err)
}

func TestWithFlags_InvalidFlagIsError(t *testing.T) {
	_, err := newConfigBuilder().withFlags([]string{"-unknown"}).build()
	assert.Error(t, err)
}

func TestWithDotEnv_MissingFileIgnored(t *testing.T) {
	b := newConfigBuilder().withDotEnv(filepath.Join(t.TempDir(), ".env"))
	assert.NoError(t, b.err)
}

func TestWithDotEnv_DoesNotOverrideEnv(t *testing.T) {
	path := writeTempFile(t, ".env", "APP_VERSION=from-dotenv\nAPP_TOKEN_ISSUER=dotenv-issuer\n")
	t.Setenv("APP_VERSION", "from-env")
	t.Setenv("APP_TOKEN_ISSUER", "")
	require.NoError(t, os.Unsetenv("APP_TOKEN_ISSUER"))

	cfg, err := newConfigBuilder().withDotEnv(path).withEnv().build()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.App.Version)
	assert.Equal(t, "dotenv-issuer", cfg.App.TokenIssuer)
}
