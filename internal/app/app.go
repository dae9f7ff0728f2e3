// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app assembles the edge functions from configuration: storages,
// services and transport handlers. Both the HTTP server and the Lambda
// binary start from [New].
package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-edge-functions/internal/config"
	"github.com/MKhiriev/go-edge-functions/internal/handler"
	"github.com/MKhiriev/go-edge-functions/internal/logger"
	"github.com/MKhiriev/go-edge-functions/internal/service"
	"github.com/MKhiriev/go-edge-functions/internal/store"
	"github.com/MKhiriev/go-edge-functions/models"
)

type App struct {
	Storages *store.Storages
	Services *service.Services
	Handlers *handler.Handlers

	logger *logger.Logger
}

func New(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("error creating storages: %w", err)
	}

	services, err := service.NewServices(storages, cfg, buildInfo, log)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("error creating services: %w", err)
	}

	// only the local backend serves its files itself
	files, _ := storages.FileStorage.(http.Handler)

	handlers, err := handler.NewHandlers(services, cfg.Storage.Files, files, log)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("error creating handlers: %w", err)
	}

	return &App{
		Storages: storages,
		Services: services,
		Handlers: handlers,
		logger:   log,
	}, nil
}

// Close releases the database pools.
func (a *App) Close() {
	if err := a.Storages.Close(); err != nil {
		a.logger.Err(err).Msg("error closing storages")
	}
}
