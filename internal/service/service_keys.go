// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-edge-functions/internal/config"
	"github.com/MKhiriev/go-edge-functions/internal/logger"
)

// keyService serves keys from configuration injected at construction time.
// It never reads the process environment itself.
type keyService struct {
	secrets config.Secrets

	logger *logger.Logger
}

func NewKeyService(secrets config.Secrets, logger *logger.Logger) KeyService {
	return &keyService{
		secrets: secrets,
		logger:  logger,
	}
}

func (s *keyService) GetPublishableKey(ctx context.Context) (string, error) {
	if s.secrets.StripePublishableKey == "" {
		return "", ErrPublishableKeyNotConfigured
	}
	return s.secrets.StripePublishableKey, nil
}

func (s *keyService) GetPushPublicKey(ctx context.Context) (string, error) {
	if s.secrets.VapidPublicKey == "" {
		return "", ErrPushPublicKeyNotConfigured
	}
	return s.secrets.VapidPublicKey, nil
}
