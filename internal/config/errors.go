// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates a missing listen address or a
	// non-positive timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrInvalidAuthConfigs indicates an unknown identity provider or a
	// provider missing its required settings.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")

	// ErrInvalidStorageConfigs indicates an empty DSN, an unsupported SQL
	// driver or an unsupported file storage location.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
