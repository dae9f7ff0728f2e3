// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-edge-functions/internal/logger"
	"github.com/MKhiriev/go-edge-functions/internal/service"
	"github.com/MKhiriev/go-edge-functions/internal/utils"
)

// withIdentity resolves the bearer token of the request, if any, and stores
// the caller identity in the request context. A missing or rejected token
// leaves the request anonymous; only a failing identity provider ends the
// request.
func (h *Handler) withIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Debug().Err(err).Msg("request has no bearer token")
			next.ServeHTTP(w, r)
			return
		}

		identity, ok, err := h.services.IdentityProvider.Identify(ctx, token)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		if !ok {
			log.Debug().Msg("bearer token was rejected by identity provider")
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, identity)))
	})
}

// requireIdentity answers 401 when withIdentity resolved no caller.
func (h *Handler) requireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.IdentityFromContext(r.Context()); !ok {
			h.writeError(w, r, service.ErrUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
