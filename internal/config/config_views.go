package config

import (
	"fmt"
	"time"
)

// ServerConfig is the backend view of [StructuredConfig].
type ServerConfig struct {
	App      App
	Features Features
	Server   Server
	DB       DB
	Redis    Redis
	LogLevel string
}

// GatewayConfig is the gateway view of [StructuredConfig].
type GatewayConfig struct {
	App      App
	Features Features
	Gateway  Gateway
	Adapter  Adapter
	Redis    Redis
	LogLevel string
}

// ClientConfig is the terminal client view of [StructuredConfig].
type ClientConfig struct {
	GatewayURL     string
	RequestTimeout time.Duration
	DSN            string
	PageSize       int
	MaxPageSize    int
	LogDir         string
	LogLevel       string
}

// GetServerConfig builds and validates the backend configuration.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := cfg.ServerView()
	return serverCfg, serverCfg.validate()
}

// GetGatewayConfig builds and validates the gateway configuration.
func GetGatewayConfig(args []string) (*GatewayConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	gatewayCfg := cfg.GatewayView()
	return gatewayCfg, gatewayCfg.validate()
}

// GetClientConfig builds and validates the client configuration. override
// carries values from the client's own command-line flags and wins over
// every other source.
func GetClientConfig(override *StructuredConfig) (*ClientConfig, error) {
	b := newConfigBuilder().
		withDotEnv(".env").
		withOverride(override).
		withEnv()
	cfg, err := b.withFile().build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.ClientView()
	return clientCfg, clientCfg.validate()
}

// ServerView maps the fields the backend uses.
func (cfg *StructuredConfig) ServerView() *ServerConfig {
	return &ServerConfig{
		App:      cfg.App,
		Features: cfg.Features,
		Server:   cfg.Server,
		DB:       cfg.Storage.DB,
		Redis:    cfg.Storage.Redis,
		LogLevel: cfg.LogLevel,
	}
}

// GatewayView maps the fields the gateway uses.
func (cfg *StructuredConfig) GatewayView() *GatewayConfig {
	return &GatewayConfig{
		App:      cfg.App,
		Features: cfg.Features,
		Gateway:  cfg.Gateway,
		Adapter:  cfg.Adapter,
		Redis:    cfg.Storage.Redis,
		LogLevel: cfg.LogLevel,
	}
}

// ClientView maps the fields the terminal client uses.
func (cfg *StructuredConfig) ClientView() *ClientConfig {
	return &ClientConfig{
		GatewayURL:     cfg.Client.GatewayURL,
		RequestTimeout: cfg.Client.RequestTimeout,
		DSN:            cfg.Client.DSN,
		PageSize:       cfg.Client.PageSize,
		MaxPageSize:    cfg.App.MaxPageSize,
		LogDir:         cfg.Client.LogDir,
		LogLevel:       cfg.LogLevel,
	}
}
