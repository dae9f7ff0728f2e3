// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-edge-functions/internal/config"
	"github.com/MKhiriev/go-edge-functions/internal/logger"
	"github.com/MKhiriev/go-edge-functions/internal/store"
	"github.com/MKhiriev/go-edge-functions/models"
)

type Services struct {
	KeyService         KeyService
	FileService        FileService
	SecurityLogService SecurityLogService
	IdentityProvider   IdentityProvider
	AppInfoService     AppInfoService
}

// NewServices wires all services over the given storages.
//
// The security log service is composed as validation → [alerting →] base;
// alerting is only added when an alert webhook is configured.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	identityProvider, err := NewIdentityProvider(cfg.Auth, logger)
	if err != nil {
		return nil, err
	}

	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	securityLogService := NewSecurityLogService(storages.SecurityLogRepository, logger)
	if alerter := NewWebhookAlerter(cfg.Alerts, logger); alerter != nil {
		securityLogService = NewSecurityLogAlertingService(alerter).Wrap(securityLogService)
	}

	validation, err := NewSecurityLogValidationService()
	if err != nil {
		return nil, fmt.Errorf("error creating security log service: %w", err)
	}
	securityLogService = validation.Wrap(securityLogService)

	return &Services{
		KeyService:         NewKeyService(cfg.Secrets, logger),
		FileService:        NewFileService(storages.FileStorage, storages.FileRepository, logger),
		SecurityLogService: securityLogService,
		IdentityProvider:   identityProvider,
		AppInfoService:     appInfoService,
	}, nil
}
