// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrNotAnObject          = errors.New("security event must be a JSON object")
	ErrInvalidSecurityEvent = errors.New("invalid security event")
)
