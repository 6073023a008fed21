// Package middleware holds the HTTP middleware shared by the backend API and
// the gateway: request tracing, access logging, response compression,
// Prometheus metrics and the JSON method-not-allowed handler.
package middleware
