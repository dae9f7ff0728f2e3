// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the edge functions.
//
// It exposes route wiring, request handlers, and middleware. Request tracing,
// access logging and identity resolution are handled in this package before
// requests are delegated to the service layer. Service errors are turned into
// HTTP responses in a single place, errors_mapper.go.
package http
