// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-edge-functions/internal/logger"
	"github.com/MKhiriev/go-edge-functions/internal/validators"
	"github.com/MKhiriev/go-edge-functions/models"
)

// SecurityLogValidationService rejects events that do not match the
// security event schema before they reach the inner service. A rejected
// event is a failure of the logging function, not a bad request.
type SecurityLogValidationService struct {
	inner     SecurityLogService
	validator validators.Validator
}

func NewSecurityLogValidationService() (SecurityLogServiceWrapper, error) {
	validator, err := validators.NewSecurityEventValidator()
	if err != nil {
		return nil, fmt.Errorf("error creating security event validator: %w", err)
	}

	return &SecurityLogValidationService{
		validator: validator,
	}, nil
}

func (v *SecurityLogValidationService) LogEvent(ctx context.Context, event models.SecurityEvent) error {
	if err := v.validator.Validate(ctx, event); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*SecurityLogValidationService.LogEvent").
			Msg("security event validation failed")
		return newDelegatedError("validate security event", err)
	}

	return v.inner.LogEvent(ctx, event)
}

func (v *SecurityLogValidationService) Wrap(wrapper SecurityLogService) SecurityLogService {
	v.inner = wrapper
	return v
}
