// Package http implements the REST transport of the backend API.
//
// It wires the chi routes, decodes requests, resolves the acting user and
// maps service errors onto HTTP statuses. Tracing, access logging, metrics
// and compression come from the shared middleware package.
package http
