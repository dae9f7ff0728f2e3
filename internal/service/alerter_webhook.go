// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-edge-functions/internal/config"
	"github.com/MKhiriev/go-edge-functions/internal/logger"
	"github.com/MKhiriev/go-edge-functions/internal/utils"
	"github.com/MKhiriev/go-edge-functions/models"
)

// webhookAlert is the JSON body posted to the alert webhook. Text makes the
// payload readable by chat webhooks that only render a "text" field.
type webhookAlert struct {
	Text     string         `json:"text"`
	Severity string         `json:"severity"`
	Event    map[string]any `json:"event"`
}

type webhookAlerter struct {
	client     *utils.HTTPClient
	webhookURL string

	logger *logger.Logger
}

// NewWebhookAlerter returns an Alerter posting to cfg.WebhookURL, or nil
// when no webhook is configured.
func NewWebhookAlerter(cfg config.Alerts, logger *logger.Logger) Alerter {
	if cfg.WebhookURL == "" {
		return nil
	}

	return &webhookAlerter{
		client:     utils.NewHTTPClient("", cfg.Timeout),
		webhookURL: cfg.WebhookURL,
		logger:     logger,
	}
}

func (a *webhookAlerter) Alert(ctx context.Context, event models.SecurityEvent) error {
	alert := webhookAlert{
		Text:     fmt.Sprintf("%s severity security event from %s", event.Severity(), event.IPAddress),
		Severity: event.Severity(),
		Event:    event.Record(),
	}

	resp, err := a.client.R().
		SetContext(ctx).
		SetBody(alert).
		Post(a.webhookURL)
	if err != nil {
		return fmt.Errorf("error posting security alert: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("security alert webhook answered with status %d", resp.StatusCode())
	}

	logger.FromContext(ctx).Debug().Str("severity", event.Severity()).Msg("security alert sent")

	return nil
}
