// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session stores gateway login sessions in Redis or, for single
// instance deployments, in process memory.
package session

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-gtd/models"
)

var (
	// ErrSessionNotFound is returned for unknown and expired sessions.
	ErrSessionNotFound = errors.New("session not found")

	ErrInvalidSessionID = errors.New("invalid session id")
)

// Store keeps sessions keyed by an opaque random id.
//go:generate mockgen -source=session.go -destination=../mock/session_store_mock.go -package=mock

type Store interface {
	// Create starts a session for the user and returns it with a fresh id.
	Create(ctx context.Context, userID int64, login string) (models.Session, error)
	Get(ctx context.Context, id string) (models.Session, error)
	Delete(ctx context.Context, id string) error
	// Touch extends the session expiry by the store TTL.
	Touch(ctx context.Context, id string) error
}

const keyPrefix = "gtd:session:"

func key(id string) string {
	return keyPrefix + id
}
