// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses configuration flags from args (usually os.Args[1:]).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-log-level minimum log level
//	-d database DSN
//	-service-role-dsn service role database DSN
//	-db-driver sql driver (pgx or sqlite3)
//	-files file storage location URI
//	-auth-provider identity provider (jwt or remote)
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-auth-base-url platform URL of the remote identity provider
//	-alerts-webhook alert webhook URL
//	-read-timeout, -write-timeout, -shutdown-timeout server timeouts
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("edge-functions", flag.ContinueOnError)

	var serverAddress NetAddress
	var jsonConfigPath, logLevel string
	var databaseDSN, serviceRoleDSN, dbDriver, filesLocation string
	var authProvider, tokenSignKey, tokenIssuer, authBaseURL string
	var alertsWebhook string
	var readTimeout, writeTimeout, shutdownTimeout time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logLevel, "log-level", "", "Minimum log level")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&serviceRoleDSN, "service-role-dsn", "", "Service role database DSN")
	fs.StringVar(&dbDriver, "db-driver", "", "SQL driver (pgx or sqlite3)")
	fs.StringVar(&filesLocation, "files", "", "File storage location URI")
	fs.StringVar(&authProvider, "auth-provider", "", "Identity provider (jwt or remote)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.StringVar(&authBaseURL, "auth-base-url", "", "Remote identity provider base URL")
	fs.StringVar(&alertsWebhook, "alerts-webhook", "", "Alert webhook URL")
	fs.DurationVar(&readTimeout, "read-timeout", 0, "Server read timeout (e.g., 30s)")
	fs.DurationVar(&writeTimeout, "write-timeout", 0, "Server write timeout (e.g., 30s)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			ReadTimeout:     readTimeout,
			WriteTimeout:    writeTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		Auth: Auth{
			Provider:     authProvider,
			TokenSignKey: tokenSignKey,
			TokenIssuer:  tokenIssuer,
			BaseURL:      authBaseURL,
		},
		Storage: Storage{
			DB: DB{
				Driver:         dbDriver,
				DSN:            databaseDSN,
				ServiceRoleDSN: serviceRoleDSN,
			},
			Files: Files{
				Location: filesLocation,
			},
		},
		Alerts: Alerts{
			WebhookURL: alertsWebhook,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// The host may be empty (all interfaces), "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
