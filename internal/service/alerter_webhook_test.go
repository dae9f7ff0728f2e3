// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-edge-functions/internal/config"
	"github.com/MKhiriev/go-edge-functions/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWebhookAlerter_DisabledWithoutURL(t *testing.T) {
	assert.Nil(t, NewWebhookAlerter(config.Alerts{}, logger.Nop()))
}

func TestWebhookAlerter_Alert(t *testing.T) {
	var received webhookAlert
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	alerter := NewWebhookAlerter(config.Alerts{WebhookURL: srv.URL, Timeout: time.Second}, logger.Nop())
	require.NotNil(t, alerter)

	err := alerter.Alert(context.Background(), criticalEvent())

	require.NoError(t, err)
	assert.Equal(t, "critical", received.Severity)
	assert.Equal(t, "critical severity security event from 1.2.3.4", received.Text)
	assert.Equal(t, "1.2.3.4", received.Event["ip_address"])
	assert.Equal(t, "x", received.Event["message"])
}

func TestWebhookAlerter_Alert_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	alerter := NewWebhookAlerter(config.Alerts{WebhookURL: srv.URL}, logger.Nop())

	err := alerter.Alert(context.Background(), criticalEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}
