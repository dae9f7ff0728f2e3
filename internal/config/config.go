// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Identity provider names accepted in [Auth.Provider].
const (
	AuthProviderJWT    = "jwt"
	AuthProviderRemote = "remote"
)

// SQL driver names accepted in [DB.Driver].
const (
	DBDriverPostgres = "pgx"
	DBDriverSQLite   = "sqlite3"
)

// StructuredConfig is the top-level configuration container for the edge
// functions. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, an optional
// JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as version and log level.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Auth selects and configures the identity provider used to resolve
	// callers from bearer tokens.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds configuration for entity persistence and file storage.
	Storage Storage `envPrefix:"STORAGE_"`

	// Alerts configures the optional alert webhook for high-severity
	// security events.
	Alerts Alerts `envPrefix:"ALERTS_"`

	// Secrets holds the values handed out by the key-retrieval functions.
	// They are read from unprefixed variables shared with the front end
	// deployment.
	Secrets Secrets

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimum zerolog level ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// ReadTimeout bounds reading the whole request, body included.
	// Env: SERVER_READ_TIMEOUT
	ReadTimeout time.Duration `env:"READ_TIMEOUT"`

	// WriteTimeout bounds writing the response.
	// Env: SERVER_WRITE_TIMEOUT
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown after a stop signal.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Auth configures the identity provider.
type Auth struct {
	// Provider is either "jwt" (local token validation) or "remote"
	// (platform lookup of the current user).
	// Env: AUTH_PROVIDER
	Provider string `env:"PROVIDER"`

	// TokenSignKey is the HMAC secret used to verify access tokens.
	// Required for the "jwt" provider.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim of access tokens.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// BaseURL is the platform URL queried by the "remote" provider.
	// Env: AUTH_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// APIKey is sent as the "apikey" header to the platform, if set.
	// Env: AUTH_API_KEY
	APIKey string `env:"API_KEY"`

	// Timeout bounds a single identity lookup of the "remote" provider.
	// Env: AUTH_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Storage groups the configuration for all persistence backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the file storage settings for uploads.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// Driver is the database/sql driver: "pgx" (default) or "sqlite3".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the connection string used for writes made on behalf of
	// authenticated users (file records).
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// ServiceRoleDSN is the connection string of the elevated service role
	// used for security log writes. Falls back to DSN when empty.
	// Env: STORAGE_DB_SERVICE_ROLE_URI
	ServiceRoleDSN string `env:"SERVICE_ROLE_URI"`
}

// Files holds file storage settings.
type Files struct {
	// Location is the storage backend URI, e.g.
	// "file:///var/lib/edge/files?base_url=http://localhost:8080/files" or
	// "s3://bucket/prefix?region=eu-central-1&endpoint=http://minio:9000".
	// Env: STORAGE_FILES_LOCATION
	Location string `env:"LOCATION"`

	// AccessKey and SecretKey are static S3 credentials. When empty the
	// default AWS credential chain is used.
	// Env: STORAGE_FILES_ACCESS_KEY, STORAGE_FILES_SECRET_KEY
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`

	// MaxMemory is the number of bytes of a multipart body kept in memory;
	// the remainder spills to temporary files.
	// Env: STORAGE_FILES_MAX_MEMORY
	MaxMemory int64 `env:"MAX_MEMORY"`
}

// Alerts configures the alert webhook.
type Alerts struct {
	// WebhookURL receives a JSON POST for every critical or high severity
	// security event. Alerting is disabled when empty.
	// Env: ALERTS_WEBHOOK_URL
	WebhookURL string `env:"WEBHOOK_URL"`

	// Timeout bounds a single webhook call.
	// Env: ALERTS_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Secrets holds the keys served by the key-retrieval functions. An empty
// value is not a startup error: the corresponding function answers with a
// configuration error instead.
type Secrets struct {
	// StripePublishableKey is returned by the publishable-key function.
	// Env: STRIPE_PUBLISHABLE_KEY
	StripePublishableKey string `env:"STRIPE_PUBLISHABLE_KEY" json:"-"`

	// VapidPublicKey is returned by the push public key function.
	// Env: VAPID_PUBLIC_KEY
	VapidPublicKey string `env:"VAPID_PUBLIC_KEY" json:"-"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration. For every field the first non-zero value wins, in this
// order:
//  1. Environment variables
//  2. Command-line flags (os.Args)
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
