// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter forwards gateway calls to the backend API.
//
// Every call is made on behalf of a resolved user: the adapter mints a
// short-lived bearer token for that user and sends only the method, path,
// allow-listed query parameters and JSON body. Backend statuses are mapped to
// the sentinel errors in errors.go so the gateway never has to look at
// backend response bodies.
package adapter

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/MKhiriev/go-gtd/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_adapter_mock.go -package=mock

// BackendAdapter is the gateway's view of the backend API.
type BackendAdapter interface {
	// Register creates a backend user and returns it.
	Register(ctx context.Context, creds models.Credentials) (models.User, error)

	// Login verifies the credentials against the backend and returns the user.
	// The backend token is discarded; the gateway mints its own per call.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// Do forwards call and returns the backend's successful response.
	Do(ctx context.Context, call Call) (Response, error)

	// Ping checks that the backend answers its health endpoint.
	Ping(ctx context.Context) error
}

// Call is one forwarded request.
type Call struct {
	UserID int64
	Login  string
	Method string
	Path   string
	Query  url.Values
	Body   json.RawMessage
}

// Response is a successful backend reply.
type Response struct {
	Status int
	Body   json.RawMessage
}
