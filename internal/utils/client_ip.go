// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-edge-functions/models"
)

// ClientIP derives the originating client address from standard proxy
// headers: the first non-empty entry of X-Forwarded-For, then X-Real-IP,
// then [models.UnknownIPAddress]. Empty entries such as " , 5.6.7.8" are
// skipped, so a present X-Forwarded-For wins whenever it names any address.
// The transport peer address is never used, because behind the edge it is
// always the proxy.
func ClientIP(header http.Header) string {
	for entry := range strings.SplitSeq(header.Get("X-Forwarded-For"), ",") {
		if entry = strings.TrimSpace(entry); entry != "" {
			return entry
		}
	}

	if realIP := strings.TrimSpace(header.Get("X-Real-IP")); realIP != "" {
		return realIP
	}

	return models.UnknownIPAddress
}
