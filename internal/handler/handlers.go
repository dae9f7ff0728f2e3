// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	stdhttp "net/http"

	"github.com/MKhiriev/go-edge-functions/internal/config"
	"github.com/MKhiriev/go-edge-functions/internal/handler/http"
	"github.com/MKhiriev/go-edge-functions/internal/logger"
	"github.com/MKhiriev/go-edge-functions/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers. files serves locally stored
// uploads and may be nil.
func NewHandlers(services *service.Services, cfg config.Files, files stdhttp.Handler, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil {
		return nil, errNoServicesProvided
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, files, logger),
	}, nil
}
