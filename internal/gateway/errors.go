// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import "errors"

var (
	ErrNoSession          = errors.New("no session")
	ErrInvalidJSON        = errors.New("invalid json")
	ErrInvalidID          = errors.New("invalid id")
	ErrFeatureDisabled    = errors.New("feature disabled")
	ErrRateLimited        = errors.New("rate limited")
	ErrMissingCredentials = errors.New("missing credentials")
)
