// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PublishableKeyResponse is returned by the publishable-key function.
type PublishableKeyResponse struct {
	PublishableKey string `json:"publishableKey"`
}

// PublicKeyResponse is returned by the push-notification public key function.
type PublicKeyResponse struct {
	PublicKey string `json:"publicKey"`
}

// SuccessResponse acknowledges an operation that has no other payload.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// FileURLResponse is returned by the generic upload function.
type FileURLResponse struct {
	FileURL string `json:"file_url"`
}

// CertificationUploadResponse is returned by the certification upload function.
type CertificationUploadResponse struct {
	Success bool   `json:"success"`
	FileURL string `json:"file_url"`
}

// ErrorResponse is the body of every failed function call.
type ErrorResponse struct {
	Error string `json:"error"`
}
