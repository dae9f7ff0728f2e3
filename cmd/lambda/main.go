// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command lambda serves the edge functions as an AWS Lambda function behind
// an API Gateway HTTP API.
package main

import (
	"context"

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

	log := logger.NewLogger("edge-lambda")
	// the Lambda runtime passes no arguments; configuration comes from the
	// function environment
	cfg, err := config.GetStructuredConfig(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	application, err := app.New(context.Background(), cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating application")
	}
	defer application.Close()

	srv, err := server.NewLambdaServer(application.Handlers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating lambda server")
	}

	srv.RunServer()
}
