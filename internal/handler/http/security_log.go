// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/MKhiriev/go-edge-functions/internal/logger"
	"github.com/MKhiriev/go-edge-functions/internal/utils"
	"github.com/MKhiriev/go-edge-functions/models"
)

func (h *Handler) logSecurityEvent(w http.ResponseWriter, r *http.Request) {
	receivedAt := time.Now().UTC()

	fields, err := decodeJSONObject(r.Body)
	if err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSONBody, err))
		return
	}

	event := models.SecurityEvent{
		Fields:      fields,
		IPAddress:   utils.ClientIP(r.Header),
		CreatedDate: receivedAt,
	}

	if err := h.services.SecurityLogService.LogEvent(r.Context(), event); err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing security event response")
	}
}

// decodeJSONObject reads a single JSON object from body. Anything but
// whitespace after the object makes the whole body invalid.
func decodeJSONObject(body io.Reader) (map[string]any, error) {
	var fields map[string]any
	decoder := json.NewDecoder(body)
	decoder.UseNumber()
	if err := decoder.Decode(&fields); err != nil {
		return nil, err
	}

	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after JSON object")
		}
		return nil, err
	}

	return fields, nil
}
