// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-edge-functions/internal/config"
	"github.com/MKhiriev/go-edge-functions/internal/logger"
)

// Storages groups every persistence dependency of the services.
//
// FileRepository uses the regular connection, SecurityLogRepository the
// service-role one. When both DSNs are equal a single pool is shared.
type Storages struct {
	SecurityLogRepository SecurityLogRepository
	FileRepository        FileRepository
	FileStorage           FileStorage

	closers []io.Closer
}

// NewStorages connects to the database(s), applies migrations through the
// service-role connection and creates the file storage backend.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	storages := &Storages{}

	db, err := NewConnect(ctx, cfg.DB.Driver, cfg.DB.DSN, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	storages.closers = append(storages.closers, db)

	serviceRoleDB := db
	if serviceRoleDSN := cfg.DB.ServiceRoleOrDefault(); serviceRoleDSN != cfg.DB.DSN {
		serviceRoleDB, err = NewConnect(ctx, cfg.DB.Driver, serviceRoleDSN, log)
		if err != nil {
			storages.Close()
			return nil, fmt.Errorf("error connecting to database with service role: %w", err)
		}
		storages.closers = append(storages.closers, serviceRoleDB)
	}

	if err = serviceRoleDB.Migrate(); err != nil {
		storages.Close()
		return nil, err
	}

	fileStorage, err := NewFileStorage(cfg.Files, log)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("error creating file storage: %w", err)
	}

	storages.SecurityLogRepository = NewSecurityLogRepository(serviceRoleDB, log)
	storages.FileRepository = NewFileRepository(db, log)
	storages.FileStorage = fileStorage

	return storages, nil
}

// Close releases all database pools.
func (s *Storages) Close() error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c.Close())
	}
	s.closers = nil

	return errors.Join(errs...)
}
