// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSecurityEventNotSaved is returned when the INSERT of a security event
	// completes without error but affects no rows.
	ErrSecurityEventNotSaved = errors.New("security event was not saved")

	// ErrFileNotSaved is returned when the INSERT of a file record completes
	// without error but affects no rows.
	ErrFileNotSaved = errors.New("file record was not saved")

	// ErrFileAlreadyExists is returned when a file record with the same id or
	// storage key is already present.
	ErrFileAlreadyExists = errors.New("file record already exists")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrUnsupportedDriver is returned by [NewConnect] for an unknown
	// database/sql driver name.
	ErrUnsupportedDriver = errors.New("unsupported sql driver")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)

// File storage errors.
var (
	// ErrUnsupportedLocation is returned when the files location URI uses a
	// scheme no backend is registered for.
	ErrUnsupportedLocation = errors.New("unsupported files location")

	// ErrInvalidStorageKey is returned when a storage key is empty or would
	// resolve outside of the storage root.
	ErrInvalidStorageKey = errors.New("invalid storage key")

	// ErrStoringFile is returned when a backend fails to persist file content.
	ErrStoringFile = errors.New("failed to store file")

	// ErrDeletingFile is returned when a backend fails to remove stored content.
	ErrDeletingFile = errors.New("failed to delete file")
)
