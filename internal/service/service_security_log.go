// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-edge-functions/internal/logger"
	"github.com/MKhiriev/go-edge-functions/internal/store"
	"github.com/MKhiriev/go-edge-functions/models"
)

// securityLogService persists security events through the service-role
// repository and raises an operational warning for critical and high
// severity events.
type securityLogService struct {
	securityLogRepository store.SecurityLogRepository
	now                   func() time.Time

	logger *logger.Logger
}

func NewSecurityLogService(securityLogRepository store.SecurityLogRepository, logger *logger.Logger) SecurityLogService {
	return &securityLogService{
		securityLogRepository: securityLogRepository,
		now:                   time.Now,
		logger:                logger,
	}
}

// LogEvent stamps the event with its receipt time when the caller did not,
// then persists it. The warning is only emitted for persisted events.
func (s *securityLogService) LogEvent(ctx context.Context, event models.SecurityEvent) error {
	log := logger.FromContext(ctx)

	if event.CreatedDate.IsZero() {
		event.CreatedDate = s.now()
	}
	if event.IPAddress == "" {
		event.IPAddress = models.UnknownIPAddress
	}

	if err := s.securityLogRepository.Save(ctx, event); err != nil {
		log.Err(err).
			Str("func", "*securityLogService.LogEvent").
			Str("severity", event.Severity()).
			Msg("error persisting security event")
		return newDelegatedError("persist security event", err)
	}

	if event.IsAlertable() {
		log.Warn().
			Str("severity", event.Severity()).
			Str("ip_address", event.IPAddress).
			Interface("event", event.Record()).
			Msg("high severity security event")
	}

	return nil
}
