// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client used for
// delegated calls to external platforms (identity lookups, alert webhooks).
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent HTTPClient. A non-empty baseURL is
// set without its trailing slash; a positive timeout bounds every request.
//
// Retries are never enabled: a failed delegated call is reported to the
// caller as is.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://platform.example.com", 5*time.Second)
//	resp, err := client.R().SetAuthToken(token).Get("/auth/v1/user")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New()
	if baseURL != "" {
		client.SetBaseURL(strings.TrimRight(baseURL, "/"))
	}
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
