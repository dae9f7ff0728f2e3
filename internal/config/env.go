// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment using the `env` and
// `envPrefix` tags of [StructuredConfig].
//
// Secrets are often mounted from files or pasted into dashboards with a
// trailing newline, so string values are trimmed before they are stored.
func parseEnv(cfg any) error {
	opts := env.Options{
		FuncMap: map[reflect.Type]env.ParserFunc{
			reflect.TypeOf(""): func(v string) (any, error) {
				return strings.TrimSpace(v), nil
			},
		},
	}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
