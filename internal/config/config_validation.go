// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the merged [StructuredConfig] is usable at startup.
//
// Missing secrets are deliberately not checked here: the key functions
// report them per request as configuration errors.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}
	if cfg.Server.ReadTimeout < 0 || cfg.Server.WriteTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidServerConfigs)
	}

	switch cfg.Auth.Provider {
	case AuthProviderJWT:
		if cfg.Auth.TokenSignKey == "" {
			return fmt.Errorf("%w: jwt provider requires a token sign key", ErrInvalidAuthConfigs)
		}
	case AuthProviderRemote:
		if _, err := url.ParseRequestURI(cfg.Auth.BaseURL); err != nil {
			return fmt.Errorf("%w: remote provider requires a valid base url: %w", ErrInvalidAuthConfigs, err)
		}
	default:
		return fmt.Errorf("%w: unknown provider %q", ErrInvalidAuthConfigs, cfg.Auth.Provider)
	}

	switch cfg.Storage.DB.Driver {
	case DBDriverPostgres, DBDriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported sql driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database uri", ErrInvalidStorageConfigs)
	}

	location, err := url.Parse(cfg.Storage.Files.Location)
	if err != nil {
		return fmt.Errorf("%w: invalid files location: %w", ErrInvalidStorageConfigs, err)
	}
	switch location.Scheme {
	case "file", "s3":
	default:
		return fmt.Errorf("%w: unsupported files location %q", ErrInvalidStorageConfigs, cfg.Storage.Files.Location)
	}

	return nil
}

// ServiceRoleOrDefault returns the DSN used for elevated writes, falling back to
// the regular DSN.
func (db DB) ServiceRoleOrDefault() string {
	if db.ServiceRoleDSN != "" {
		return db.ServiceRoleDSN
	}
	return db.DSN
}
