// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Identity is the authenticated caller resolved for a single request.
//
// It is produced by the identity middleware from the bearer token of the
// request and is never persisted. Handlers only rely on its presence; the
// fields are used for storage keys and audit columns.
type Identity struct {
	// ID is the provider-assigned user identifier (the token subject).
	ID string `json:"id"`

	// Email is the caller's e-mail address, if the provider exposes it.
	Email string `json:"email,omitempty"`

	// Role is the provider role of the caller (e.g. "user", "admin").
	Role string `json:"role,omitempty"`
}
