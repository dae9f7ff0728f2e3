// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-edge-functions/models"
)

const (
	securityLogsTable = "security_logs"
	filesTable        = "files"
)

// buildInsertSecurityEventQuery renders the INSERT of one enriched security
// event. The whole record goes to the payload column, the fields used for
// querying are duplicated into their own columns.
func buildInsertSecurityEventQuery(placeholder squirrel.PlaceholderFormat, event models.SecurityEvent) (string, []any, error) {
	payload, err := json.Marshal(event.Record())
	if err != nil {
		return "", nil, fmt.Errorf("%w: marshal security event: %w", ErrBuildingSQLQuery, err)
	}

	severity := event.Severity()

	query, args, err := squirrel.
		Insert(securityLogsTable).
		Columns("severity", "ip_address", "created_date", "payload").
		Values(
			sql.NullString{String: severity, Valid: severity != ""},
			event.IPAddress,
			event.CreatedDate.UTC(),
			string(payload),
		).
		PlaceholderFormat(placeholder).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildInsertFileQuery(placeholder squirrel.PlaceholderFormat, file models.StoredFile) (string, []any, error) {
	query, args, err := squirrel.
		Insert(filesTable).
		Columns("id", "owner_id", "kind", "name", "content_type", "size", "storage_key", "url", "created_at").
		Values(
			file.ID,
			file.OwnerID,
			string(file.Kind),
			file.Name,
			file.ContentType,
			file.Size,
			file.StorageKey,
			file.URL,
			file.CreatedAt.UTC(),
		).
		PlaceholderFormat(placeholder).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
