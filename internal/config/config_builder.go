package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// defaults fill every field still zero after all sources are merged.
var defaults = StructuredConfig{
	App: App{
		DefaultUserID: 1,
		TokenIssuer:   "go-gtd",
		TokenDuration: 5 * time.Minute,
		MaxPageSize:   200,
		Version:       "dev",
	},
	Server: Server{
		HTTPAddress:    "localhost:8080",
		RequestTimeout: 30 * time.Second,
	},
	Gateway: Gateway{
		Address:       "localhost:8081",
		SessionTTL:    24 * time.Hour,
		SweepInterval: time.Minute,
		RateWindow:    time.Minute,
	},
	Adapter: Adapter{
		APIURL:         "http://localhost:8080",
		RequestTimeout: 10 * time.Second,
	},
	Client: Client{
		GatewayURL:     "http://localhost:8081",
		RequestTimeout: 10 * time.Second,
		DSN:            "gtd-client.db",
		PageSize:       20,
	},
}

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	d := defaults
	if err := mergo.Merge(config, &d); err != nil {
		return nil, fmt.Errorf("error applying defaults: %w", err)
	}

	return config, nil
}

func (b *configBuilder) withDotEnv(path string) *configBuilder {
	if err := loadDotEnv(path); err != nil {
		b.err = errors.Join(b.err, err)
	}
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagCfg, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flagCfg)
	return b
}

// withOverride adds an already populated config, e.g. from cobra flags.
func (b *configBuilder) withOverride(cfg *StructuredConfig) *configBuilder {
	if cfg != nil {
		b.configs = append(b.configs, cfg)
	}
	return b
}

func (b *configBuilder) withFile() *configBuilder {
	var path string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			path = cfg.JSONFilePath
			break
		}
	}

	if path == "" {
		return b
	}

	fileCfg, err := parseFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, fileCfg)

	return b
}
