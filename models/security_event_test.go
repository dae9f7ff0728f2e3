// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSecurityEvent_IsAlertable(t *testing.T) {
	tests := []struct {
		name     string
		severity any
		want     bool
	}{
		{name: "critical", severity: "critical", want: true},
		{name: "high", severity: "high", want: true},
		{name: "medium", severity: "medium", want: false},
		{name: "upper case is not matched", severity: "CRITICAL", want: false},
		{name: "non-string severity", severity: 5, want: false},
		{name: "missing severity", severity: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := map[string]any{"message": "x"}
			if tt.severity != nil {
				fields["severity"] = tt.severity
			}
			event := SecurityEvent{Fields: fields}
			assert.Equal(t, tt.want, event.IsAlertable())
		})
	}
}

func TestSecurityEvent_Record_DerivedFieldsOverrideCallerFields(t *testing.T) {
	created := time.Date(2026, 10, 18, 12, 30, 0, 500, time.FixedZone("X", 3600))
	event := SecurityEvent{
		Fields: map[string]any{
			"severity":     "low",
			"ip_address":   "6.6.6.6",
			"created_date": "yesterday",
		},
		IPAddress:   "1.2.3.4",
		CreatedDate: created,
	}

	record := event.Record()

	assert.Equal(t, "low", record["severity"])
	assert.Equal(t, "1.2.3.4", record["ip_address"])
	assert.Equal(t, "2026-10-18T11:30:00.0000005Z", record["created_date"])
	// the caller map is left untouched
	assert.Equal(t, "6.6.6.6", event.Fields["ip_address"])
}
