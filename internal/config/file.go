// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors StructuredConfig for JSON and YAML files.
type fileConfig struct {
	App struct {
		DefaultUserID int64    `json:"default_user_id" yaml:"default_user_id"`
		TokenSignKey  string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration Duration `json:"token_duration" yaml:"token_duration"`
		Version       string   `json:"version" yaml:"version"`
		MaxPageSize   int      `json:"max_page_size" yaml:"max_page_size"`
	} `json:"app" yaml:"app"`

	Features struct {
		Auth               bool `json:"auth" yaml:"auth"`
		Realtime           bool `json:"realtime" yaml:"realtime"`
		EmailNotifications bool `json:"email_notifications" yaml:"email_notifications"`
		ExportImport       bool `json:"export_import" yaml:"export_import"`
	} `json:"features" yaml:"features"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db" yaml:"db"`
		Redis struct {
			Address  string `json:"address" yaml:"address"`
			Password string `json:"password" yaml:"password"`
			DB       int    `json:"db" yaml:"db"`
		} `json:"redis" yaml:"redis"`
	} `json:"storage" yaml:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		GRPCAddress    string   `json:"grpc_address" yaml:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"server" yaml:"server"`

	Gateway struct {
		Address       string   `json:"address" yaml:"address"`
		SessionTTL    Duration `json:"session_ttl" yaml:"session_ttl"`
		SweepInterval Duration `json:"sweep_interval" yaml:"sweep_interval"`
		RateLimit     int      `json:"rate_limit" yaml:"rate_limit"`
		SecureCookie  bool     `json:"secure_cookie" yaml:"secure_cookie"`
		RateWindow    Duration `json:"rate_window" yaml:"rate_window"`
	} `json:"gateway" yaml:"gateway"`

	Adapter struct {
		APIURL         string   `json:"api_url" yaml:"api_url"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter" yaml:"adapter"`

	Client struct {
		GatewayURL     string   `json:"gateway_url" yaml:"gateway_url"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		DSN            string   `json:"db_dsn" yaml:"db_dsn"`
		PageSize       int      `json:"page_size" yaml:"page_size"`
		LogDir         string   `json:"log_dir" yaml:"log_dir"`
	} `json:"client" yaml:"client"`

	LogLevel string `json:"log_level" yaml:"log_level"`
}

// parseFile reads a JSON config file, or a YAML one when the extension is
// .yaml or .yml.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return fc.toStructured(), nil
}

func (fc fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			DefaultUserID: fc.App.DefaultUserID,
			TokenSignKey:  fc.App.TokenSignKey,
			TokenIssuer:   fc.App.TokenIssuer,
			TokenDuration: time.Duration(fc.App.TokenDuration),
			Version:       fc.App.Version,
			MaxPageSize:   fc.App.MaxPageSize,
		},
		Features: Features{
			Auth:               fc.Features.Auth,
			Realtime:           fc.Features.Realtime,
			EmailNotifications: fc.Features.EmailNotifications,
			ExportImport:       fc.Features.ExportImport,
		},
		Storage: Storage{
			DB: DB{DSN: fc.Storage.DB.DSN},
			Redis: Redis{
				Address:  fc.Storage.Redis.Address,
				Password: fc.Storage.Redis.Password,
				DB:       fc.Storage.Redis.DB,
			},
		},
		Server: Server{
			HTTPAddress:    fc.Server.HTTPAddress,
			GRPCAddress:    fc.Server.GRPCAddress,
			RequestTimeout: time.Duration(fc.Server.RequestTimeout),
		},
		Gateway: Gateway{
			Address:       fc.Gateway.Address,
			SessionTTL:    time.Duration(fc.Gateway.SessionTTL),
			SweepInterval: time.Duration(fc.Gateway.SweepInterval),
			RateLimit:     fc.Gateway.RateLimit,
			SecureCookie:  fc.Gateway.SecureCookie,
			RateWindow:    time.Duration(fc.Gateway.RateWindow),
		},
		Adapter: Adapter{
			APIURL:         fc.Adapter.APIURL,
			RequestTimeout: time.Duration(fc.Adapter.RequestTimeout),
		},
		Client: Client{
			GatewayURL:     fc.Client.GatewayURL,
			RequestTimeout: time.Duration(fc.Client.RequestTimeout),
			DSN:            fc.Client.DSN,
			PageSize:       fc.Client.PageSize,
			LogDir:         fc.Client.LogDir,
		},
		LogLevel: fc.LogLevel,
	}
}

// Duration is a time.Duration that decodes from strings like "1h" or from
// integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if n, err := time.ParseDuration(node.Value); err == nil {
		*d = Duration(n)
		return nil
	}
	var ns int64
	if err := node.Decode(&ns); err != nil {
		return fmt.Errorf("invalid duration %q", node.Value)
	}
	*d = Duration(time.Duration(ns))
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
