package config

import "errors"

// Validation errors returned by the config views when required settings are
// missing or invalid.
var (
	ErrInvalidAppConfigs     = errors.New("invalid app configuration")
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	ErrInvalidServerConfigs  = errors.New("invalid server configuration")
	ErrInvalidGatewayConfigs = errors.New("invalid gateway configuration")
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	ErrInvalidClientConfigs  = errors.New("invalid client configuration")
)
