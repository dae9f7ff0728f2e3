// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-edge-functions/internal/logger"
	"github.com/MKhiriev/go-edge-functions/models"
)

// SecurityLogAlertingService sends an alert for every critical or high
// severity event the inner service accepted. Alert failures are logged and
// never returned.
type SecurityLogAlertingService struct {
	inner   SecurityLogService
	alerter Alerter
}

func NewSecurityLogAlertingService(alerter Alerter) SecurityLogServiceWrapper {
	return &SecurityLogAlertingService{
		alerter: alerter,
	}
}

func (a *SecurityLogAlertingService) LogEvent(ctx context.Context, event models.SecurityEvent) error {
	if err := a.inner.LogEvent(ctx, event); err != nil {
		return err
	}

	if !event.IsAlertable() {
		return nil
	}

	if err := a.alerter.Alert(ctx, event); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*SecurityLogAlertingService.LogEvent").
			Str("severity", event.Severity()).
			Msg("error sending security alert")
	}

	return nil
}

func (a *SecurityLogAlertingService) Wrap(wrapper SecurityLogService) SecurityLogService {
	a.inner = wrapper
	return a
}
