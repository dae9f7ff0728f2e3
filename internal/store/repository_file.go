// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-edge-functions/internal/logger"
	"github.com/MKhiriev/go-edge-functions/models"
	"github.com/jackc/pgerrcode"
)

// fileRepository is the SQL implementation of [FileRepository] over the
// "files" table.
type fileRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewFileRepository(db *DB, logger *logger.Logger) FileRepository {
	logger.Debug().Msg("creating file repository")
	return &fileRepository{
		db:     db,
		logger: logger,
	}
}

// Save records a stored file.
//
// Error handling:
//   - unique violation on id or storage key → [ErrFileAlreadyExists].
//   - any other driver error → [ErrExecutingStatement].
//   - zero affected rows → [ErrFileNotSaved].
func (r *fileRepository) Save(ctx context.Context, file models.StoredFile) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertFileQuery(r.db.placeholder, file)
	if err != nil {
		log.Err(err).Str("func", "*fileRepository.Save").Msg("failed to create query")
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*fileRepository.Save").
			Str("file_id", file.ID).
			Str("owner_id", file.OwnerID).
			Bool("retryable", r.db.isRetryable(err)).
			Msg("failed to insert file record")

		if postgresError(err) == pgerrcode.UniqueViolation || sqliteUniqueViolation(err) {
			return fmt.Errorf("%w: %w", ErrFileAlreadyExists, err)
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrFileNotSaved
	}

	return nil
}
