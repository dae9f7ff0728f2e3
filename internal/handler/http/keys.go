// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-edge-functions/internal/logger"
	"github.com/MKhiriev/go-edge-functions/internal/utils"
	"github.com/MKhiriev/go-edge-functions/models"
)

func (h *Handler) getPublishableKey(w http.ResponseWriter, r *http.Request) {
	key, err := h.services.KeyService.GetPublishableKey(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, models.PublishableKeyResponse{PublishableKey: key}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing publishable key response")
	}
}

func (h *Handler) getPushPublicKey(w http.ResponseWriter, r *http.Request) {
	key, err := h.services.KeyService.GetPushPublicKey(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, models.PublicKeyResponse{PublicKey: key}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing push public key response")
	}
}
