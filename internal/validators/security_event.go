// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-edge-functions/models"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

const securityEventSchemaURL = "security_event.json"

// securityEventSchema only constrains fields the service itself reads.
// Every other caller field is stored as is.
const securityEventSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"severity": {"type": "string"}
	},
	"additionalProperties": true
}`

// SecurityEventValidator validates [models.SecurityEvent] values against the
// security event JSON schema. Field scoping is not supported: the whole
// event is always validated.
type SecurityEventValidator struct {
	schema *jsonschema.Schema
}

// NewSecurityEventValidator compiles the embedded schema and returns the
// validator as the Validator interface.
func NewSecurityEventValidator() (Validator, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(securityEventSchemaURL, strings.NewReader(securityEventSchema)); err != nil {
		return nil, fmt.Errorf("add security event schema: %w", err)
	}

	schema, err := compiler.Compile(securityEventSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile security event schema: %w", err)
	}

	return &SecurityEventValidator{schema: schema}, nil
}

// Validate accepts models.SecurityEvent, *models.SecurityEvent or a decoded
// JSON object (map[string]any).
func (v *SecurityEventValidator) Validate(ctx context.Context, value any, fields ...string) error {
	switch val := value.(type) {
	case models.SecurityEvent:
		return v.validateFields(val.Fields)
	case *models.SecurityEvent:
		if val == nil {
			return ErrNotAnObject
		}
		return v.validateFields(val.Fields)
	case map[string]any:
		return v.validateFields(val)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}
}

func (v *SecurityEventValidator) validateFields(fields map[string]any) error {
	// a JSON null body decodes into a nil map
	if fields == nil {
		return ErrNotAnObject
	}

	if err := v.schema.Validate(fields); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSecurityEvent, err)
	}

	return nil
}
