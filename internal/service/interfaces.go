// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-edge-functions/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=SecurityLogServiceWrapper

// KeyService hands out publishable client-side keys from the injected
// configuration.
type KeyService interface {
	// GetPublishableKey returns the payment provider publishable key or
	// [ErrPublishableKeyNotConfigured].
	GetPublishableKey(ctx context.Context) (string, error)

	// GetPushPublicKey returns the web push (VAPID) public key or
	// [ErrPushPublicKeyNotConfigured].
	GetPushPublicKey(ctx context.Context) (string, error)
}

// FileService stores files uploaded by authenticated callers.
type FileService interface {
	Upload(ctx context.Context, owner models.Identity, kind models.FileKind, file models.UploadedFile) (models.StoredFile, error)
}

// SecurityLogService records caller-described security events.
type SecurityLogService interface {
	LogEvent(ctx context.Context, event models.SecurityEvent) error
}

// IdentityProvider resolves a bearer token into the caller identity.
//
// A token that is invalid, expired or unknown to the provider is not an
// error: the second return value is false. Errors are reserved for failures
// of the provider itself.
type IdentityProvider interface {
	Identify(ctx context.Context, token string) (models.Identity, bool, error)
}

// Alerter notifies operators about a security event that requires attention.
type Alerter interface {
	Alert(ctx context.Context, event models.SecurityEvent) error
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetAppBuildInfo(ctx context.Context) models.AppBuildInfo
}

// SecurityLogServiceWrapper defines middleware composition for SecurityLogService.
// Implementations wrap an existing SecurityLogService to add behavior such as
// validation or alerting.
type SecurityLogServiceWrapper interface {
	Wrap(SecurityLogService) SecurityLogService // returns a decorated SecurityLogService applying additional behavior
}
