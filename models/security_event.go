// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Field names derived by the server and merged into every security event.
const (
	SecurityEventFieldSeverity    = "severity"
	SecurityEventFieldIPAddress   = "ip_address"
	SecurityEventFieldCreatedDate = "created_date"
)

// UnknownIPAddress is recorded when no proxy header carries the client address.
const UnknownIPAddress = "unknown"

// Severity levels that trigger operational alerts.
const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
)

// SecurityEvent is a caller-described security event enriched with the
// originating IP address and the time it was received.
//
// Fields holds the caller-supplied JSON object as is; the service does not
// own its schema. IPAddress and CreatedDate are derived server-side and
// override caller fields of the same name when the event is serialized.
type SecurityEvent struct {
	Fields      map[string]any
	IPAddress   string
	CreatedDate time.Time
}

// Severity returns the "severity" field of the event, or an empty string
// when it is missing or not a string.
func (e SecurityEvent) Severity() string {
	severity, _ := e.Fields[SecurityEventFieldSeverity].(string)
	return severity
}

// IsAlertable reports whether the event severity requires an operational alert.
func (e SecurityEvent) IsAlertable() bool {
	switch e.Severity() {
	case SeverityCritical, SeverityHigh:
		return true
	default:
		return false
	}
}

// Record returns the enriched event as a flat JSON object ready to be
// persisted: caller fields first, derived fields on top.
func (e SecurityEvent) Record() map[string]any {
	record := make(map[string]any, len(e.Fields)+2)
	for k, v := range e.Fields {
		record[k] = v
	}
	record[SecurityEventFieldIPAddress] = e.IPAddress
	record[SecurityEventFieldCreatedDate] = e.CreatedDate.UTC().Format(time.RFC3339Nano)

	return record
}
