// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-edge-functions/internal/logger"
	"github.com/MKhiriev/go-edge-functions/internal/service"
	"github.com/MKhiriev/go-edge-functions/internal/utils"
)

var errorKindStatusMap = map[service.ErrorKind]int{
	service.KindUnauthorized:     http.StatusUnauthorized,
	service.KindBadRequest:       http.StatusBadRequest,
	service.KindConfiguration:    http.StatusInternalServerError,
	service.KindDelegatedFailure: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	if status, ok := errorKindStatusMap[service.KindOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// messageFromError returns the text sent to the client. Delegated failures
// never expose their internal message.
func messageFromError(err error, status int) string {
	if message := service.PublicMessage(err); message != "" {
		return message
	}
	return http.StatusText(status)
}

// writeError logs err with the request-scoped logger and answers with
// {"error": <message>}.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	log.Err(err).
		Str("kind", service.KindOf(err).String()).
		Int("status", status).
		Msg("request failed")

	if writeErr := utils.WriteError(w, messageFromError(err, status), status); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}
