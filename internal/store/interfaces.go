// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-edge-functions/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock -exclude_interfaces=ErrorClassificator

// SecurityLogRepository persists enriched security events. It is always
// backed by the service-role connection.
type SecurityLogRepository interface {
	Save(ctx context.Context, event models.SecurityEvent) error
}

// FileRepository records uploaded files on behalf of their owners.
type FileRepository interface {
	Save(ctx context.Context, file models.StoredFile) error
}

// FileStorage stores file content under a key and returns a URL the file
// can be fetched from. Delete removes a stored key; removing a key that does
// not exist is not an error.
type FileStorage interface {
	Put(ctx context.Context, key string, file models.UploadedFile) (string, error)
	Delete(ctx context.Context, key string) error
}

// ErrorClassificator decides whether a failed database operation is
// transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
