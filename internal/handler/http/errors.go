// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors for request bodies that cannot be read. Both map to a
// delegated failure: the functions treat a malformed body as their own failure.
var (
	// ErrInvalidJSONBody is returned when the body of a JSON function cannot
	// be decoded.
	ErrInvalidJSONBody = errors.New("request body is not valid JSON")

	// ErrInvalidMultipartForm is returned when an upload body is not a
	// readable multipart/form-data payload.
	ErrInvalidMultipartForm = errors.New("request body is not a valid multipart form")
)
