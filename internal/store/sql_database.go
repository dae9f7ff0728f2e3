// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-edge-functions/internal/config"
	"github.com/MKhiriev/go-edge-functions/internal/logger"
	"github.com/MKhiriev/go-edge-functions/migrations"
)

// DB is a database/sql pool bound to one driver. The placeholder format of
// generated queries and the error classifier follow the driver.
type DB struct {
	*sql.DB
	driver             string
	placeholder        squirrel.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens and pings a connection pool for the given driver
// ("pgx" or "sqlite3").
func NewConnect(ctx context.Context, driver, dsn string, log *logger.Logger) (*DB, error) {
	switch driver {
	case config.DBDriverPostgres:
		return newConnectPostgres(ctx, dsn, log)
	case config.DBDriverSQLite:
		return newConnectSQLite(ctx, dsn, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}

// Migrate applies the embedded migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// isRetryable reports whether err is a transient database failure.
func (db *DB) isRetryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}
