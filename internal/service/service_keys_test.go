// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-edge-functions/internal/config"
	"github.com/MKhiriev/go-edge-functions/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyService_GetPublishableKey(t *testing.T) {
	svc := NewKeyService(config.Secrets{StripePublishableKey: "pk_test_123"}, logger.Nop())

	key, err := svc.GetPublishableKey(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "pk_test_123", key)
}

func TestKeyService_GetPublishableKey_NotConfigured(t *testing.T) {
	svc := NewKeyService(config.Secrets{VapidPublicKey: "vapid"}, logger.Nop())

	key, err := svc.GetPublishableKey(context.Background())

	assert.Empty(t, key)
	assert.ErrorIs(t, err, ErrPublishableKeyNotConfigured)
	assert.Equal(t, KindConfiguration, KindOf(err))
}

func TestKeyService_GetPushPublicKey(t *testing.T) {
	svc := NewKeyService(config.Secrets{VapidPublicKey: "BEl62iUYgUivxIkv69yViEuiBIa"}, logger.Nop())

	key, err := svc.GetPushPublicKey(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "BEl62iUYgUivxIkv69yViEuiBIa", key)
}

func TestKeyService_GetPushPublicKey_NotConfigured(t *testing.T) {
	svc := NewKeyService(config.Secrets{StripePublishableKey: "pk"}, logger.Nop())

	_, err := svc.GetPushPublicKey(context.Background())

	assert.ErrorIs(t, err, ErrPushPublicKeyNotConfigured)
	assert.Equal(t, KindConfiguration, KindOf(err))
}

func TestKeyService_RepeatedCallsAreStable(t *testing.T) {
	svc := NewKeyService(config.Secrets{StripePublishableKey: "pk", VapidPublicKey: "vk"}, logger.Nop())
	ctx := context.Background()

	first, err := svc.GetPublishableKey(ctx)
	require.NoError(t, err)
	second, err := svc.GetPublishableKey(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
