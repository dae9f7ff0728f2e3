// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")
	errNoHandlersProvided  = errors.New("no http handler is provided")

	errDecodingLambdaBody = errors.New("error decoding base64 request body")
	errBuildingRequest    = errors.New("error building http request from lambda event")
)
