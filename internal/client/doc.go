// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client is the presentation-side runtime: a gateway API client,
// per-view list state with its key-based cache, grouping of list items and
// client-local preferences.
package client
