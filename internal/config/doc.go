// Package config provides configuration loading, merging, and validation for
// the backend, the gateway and the terminal client.
//
// Configuration is assembled from multiple sources; earlier sources win for
// non-zero fields:
//  1. Environment variables (an optional .env file is loaded first and never
//     overrides variables that are already set)
//  2. Command-line flags
//  3. JSON or YAML config file named by CONFIG / -c
//  4. Built-in defaults
//
// The entry points are [GetServerConfig], [GetGatewayConfig] and
// [GetClientConfig]; each returns a validated view of [StructuredConfig].
package config
