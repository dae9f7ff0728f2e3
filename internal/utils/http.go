// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-edge-functions/models"
)

// internalErrorBody is written when a response value cannot be encoded, so
// callers still receive the same JSON error shape as any other failure.
var internalErrorBody = []byte(`{"error":"Internal Server Error"}`)

// WriteJSON writes data as the JSON body of the response with statusCode.
//
//	WriteJSON(w, models.PublishableKeyResponse{PublishableKey: key}, http.StatusOK)
//	WriteJSON(w, models.ErrorResponse{Error: "Unauthorized"}, http.StatusUnauthorized)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write(internalErrorBody)
		return 0, fmt.Errorf("error encoding %T response: %w", data, err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(body)
}

// WriteError writes message as a [models.ErrorResponse] with statusCode.
func WriteError(w http.ResponseWriter, message string, statusCode int) error {
	_, err := WriteJSON(w, models.ErrorResponse{Error: message}, statusCode)
	return err
}
