// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound payloads and list query parameters.
//
// Struct payloads are validated with go-playground/validator using the
// `validate` tags of the models package; failures are reported as
// *ValidationError keyed by JSON field name so transports can surface
// field-level detail.
package validators

import "context"

// Validator validates an input value and optionally restricts validation to
// the named struct fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
