// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-edge-functions/internal/config"
	"github.com/MKhiriev/go-edge-functions/internal/logger"
	"github.com/MKhiriev/go-edge-functions/internal/service"
)

// defaultMaxMemory is used when no multipart memory limit is configured.
const defaultMaxMemory = 32 << 20

type Handler struct {
	services *service.Services

	// files serves stored uploads under /files; nil when the storage backend
	// hands out its own URLs.
	files     http.Handler
	maxMemory int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Files, files http.Handler, logger *logger.Logger) *Handler {
	maxMemory := cfg.MaxMemory
	if maxMemory <= 0 {
		maxMemory = defaultMaxMemory
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		files:     files,
		maxMemory: maxMemory,
		logger:    logger,
	}
}
