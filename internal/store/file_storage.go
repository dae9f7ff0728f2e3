// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-edge-functions/internal/config"
	"github.com/MKhiriev/go-edge-functions/internal/logger"
)

// NewFileStorage creates the file storage backend described by
// cfg.Location.
//
// Supported schemes:
//   - file:///absolute/path?base_url=http://host/files - local filesystem
//   - s3://bucket/prefix?region=eu-central-1&endpoint=http://minio:9000&public_url=https://cdn - Amazon S3 or compatible
func NewFileStorage(cfg config.Files, log *logger.Logger) (FileStorage, error) {
	u, err := url.Parse(cfg.Location)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedLocation, err)
	}

	switch strings.ToLower(u.Scheme) {
	case "file":
		return newLocalFileStorage(u, log)
	case "s3":
		return newS3FileStorage(u, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLocation, u.Scheme)
	}
}

// joinURL appends the escaped key segments to base.
func joinURL(base, key string) string {
	segments := strings.Split(key, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}

	return strings.TrimSuffix(base, "/") + "/" + strings.Join(segments, "/")
}
