// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-edge-functions/internal/app"
	"github.com/MKhiriev/go-edge-functions/internal/config"
	"github.com/MKhiriev/go-edge-functions/internal/logger"
	"github.com/MKhiriev/go-edge-functions/internal/server"
	"github.com/MKhiriev/go-edge-functions/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("edge-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("auth_provider", cfg.Auth.Provider).
		Str("db_driver", cfg.Storage.DB.Driver).
		Msg("received configs")

	application, err := app.New(context.Background(), cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating application")
	}
	defer application.Close()

	srv, err := server.NewServer(application.Handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(buildInfo models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", buildInfo.Version)
	fmt.Printf("Build date: %s\n", buildInfo.Date)
	fmt.Printf("Build commit: %s\n", buildInfo.Commit)
}
