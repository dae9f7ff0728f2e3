// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"testing"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{
			name:    "x-forwarded-for single",
			headers: map[string]string{"X-Forwarded-For": "1.2.3.4"},
			want:    "1.2.3.4",
		},
		{
			name:    "x-forwarded-for chain takes first hop",
			headers: map[string]string{"X-Forwarded-For": " 1.2.3.4 , 10.0.0.1, 10.0.0.2"},
			want:    "1.2.3.4",
		},
		{
			name:    "x-forwarded-for preferred over x-real-ip",
			headers: map[string]string{"X-Forwarded-For": "1.2.3.4", "X-Real-IP": "5.6.7.8"},
			want:    "1.2.3.4",
		},
		{
			name:    "x-real-ip fallback",
			headers: map[string]string{"X-Real-IP": "5.6.7.8"},
			want:    "5.6.7.8",
		},
		{
			name:    "empty first hop skips to next forwarded entry",
			headers: map[string]string{"X-Forwarded-For": " , 5.6.7.8", "X-Real-IP": "9.9.9.9"},
			want:    "5.6.7.8",
		},
		{
			name:    "blank x-forwarded-for falls back to x-real-ip",
			headers: map[string]string{"X-Forwarded-For": " , ", "X-Real-IP": "5.6.7.8"},
			want:    "5.6.7.8",
		},
		{
			name:    "no headers",
			headers: map[string]string{},
			want:    "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := http.Header{}
			for k, v := range tt.headers {
				header.Set(k, v)
			}

			if got := ClientIP(header); got != tt.want {
				t.Errorf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
