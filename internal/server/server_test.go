package server

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/go-gtd/internal/config"
	"github.com/MKhiriev/go-gtd/internal/handler"
	"github.com/MKhiriev/go-gtd/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_NoAddresses(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	assert.Nil(t, s)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewGatewayServer(t *testing.T) {
	_, err := NewGatewayServer(http.NotFoundHandler(), "", logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	s, err := NewGatewayServer(http.NotFoundHandler(), "127.0.0.1:0", logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.NotPanics(t, s.Shutdown)
}
