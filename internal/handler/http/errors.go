// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the request decoding and authentication steps. Callers
// can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when a protected request
	// carries no "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is not of
	// the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidJSON is returned when a request body is not valid JSON for
	// the expected payload.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrFeatureDisabled is returned for routes switched off by a feature
	// flag.
	ErrFeatureDisabled = errors.New("feature is disabled")
)
