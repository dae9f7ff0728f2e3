// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-edge-functions/internal/logger"
	"github.com/MKhiriev/go-edge-functions/models"
)

// securityLogRepository is the SQL implementation of [SecurityLogRepository].
// It writes into the "security_logs" table through the service-role pool.
type securityLogRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSecurityLogRepository constructs a [SecurityLogRepository] backed by
// the provided (service-role) database connection.
func NewSecurityLogRepository(db *DB, logger *logger.Logger) SecurityLogRepository {
	logger.Debug().Msg("creating security log repository")
	return &securityLogRepository{
		db:     db,
		logger: logger,
	}
}

// Save inserts the enriched event.
//
// Error handling:
//   - query construction failure → [ErrBuildingSQLQuery].
//   - driver error → [ErrExecutingStatement] (logged with its retryability).
//   - zero affected rows → [ErrSecurityEventNotSaved].
func (r *securityLogRepository) Save(ctx context.Context, event models.SecurityEvent) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertSecurityEventQuery(r.db.placeholder, event)
	if err != nil {
		log.Err(err).Str("func", "*securityLogRepository.Save").Msg("failed to create query")
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*securityLogRepository.Save").
			Bool("retryable", r.db.isRetryable(err)).
			Msg("failed to insert security event")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrSecurityEventNotSaved
	}

	return nil
}
