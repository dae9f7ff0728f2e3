// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the edge functions router.
//
// Two runtimes are provided: a long-running HTTP server with signal handling
// and graceful shutdown, and an AWS Lambda adapter that translates API
// Gateway HTTP API events into requests for the same router.
package server
