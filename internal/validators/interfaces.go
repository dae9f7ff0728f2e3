// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach storage.
//
// The only payload with a contract today is the security event: its
// required fields and value ranges live in an embedded JSON schema that
// [SecurityEventValidator] compiles once at startup.
package validators

import "context"

// Validator checks value and returns an error describing what is wrong
// with it. fields may narrow the check for implementations that support
// it; the security event schema always validates the whole object.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
