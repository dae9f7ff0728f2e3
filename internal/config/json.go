// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON configuration file.
// Secrets are intentionally absent: they only come from the environment.
type StructuredJSONConfig struct {
	App struct {
		Version  string `json:"version"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		ReadTimeout     Duration `json:"read_timeout"`
		WriteTimeout    Duration `json:"write_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Auth struct {
		Provider     string   `json:"provider"`
		TokenSignKey string   `json:"token_sign_key"`
		TokenIssuer  string   `json:"token_issuer"`
		BaseURL      string   `json:"base_url"`
		APIKey       string   `json:"api_key"`
		Timeout      Duration `json:"timeout"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			Driver         string `json:"driver"`
			DSN            string `json:"dsn"`
			ServiceRoleDSN string `json:"service_role_dsn"`
		} `json:"db,omitempty"`

		Files struct {
			Location  string `json:"location"`
			AccessKey string `json:"access_key"`
			SecretKey string `json:"secret_key"`
			MaxMemory int64  `json:"max_memory"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Alerts struct {
		WebhookURL string   `json:"webhook_url"`
		Timeout    Duration `json:"timeout"`
	} `json:"alerts,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:  jsonCfg.App.Version,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			ReadTimeout:     time.Duration(jsonCfg.Server.ReadTimeout),
			WriteTimeout:    time.Duration(jsonCfg.Server.WriteTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Auth: Auth{
			Provider:     jsonCfg.Auth.Provider,
			TokenSignKey: jsonCfg.Auth.TokenSignKey,
			TokenIssuer:  jsonCfg.Auth.TokenIssuer,
			BaseURL:      jsonCfg.Auth.BaseURL,
			APIKey:       jsonCfg.Auth.APIKey,
			Timeout:      time.Duration(jsonCfg.Auth.Timeout),
		},
		Storage: Storage{
			DB: DB{
				Driver:         jsonCfg.Storage.DB.Driver,
				DSN:            jsonCfg.Storage.DB.DSN,
				ServiceRoleDSN: jsonCfg.Storage.DB.ServiceRoleDSN,
			},
			Files: Files{
				Location:  jsonCfg.Storage.Files.Location,
				AccessKey: jsonCfg.Storage.Files.AccessKey,
				SecretKey: jsonCfg.Storage.Files.SecretKey,
				MaxMemory: jsonCfg.Storage.Files.MaxMemory,
			},
		},
		Alerts: Alerts{
			WebhookURL: jsonCfg.Alerts.WebhookURL,
			Timeout:    time.Duration(jsonCfg.Alerts.Timeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
