// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Function paths, relative to the /functions prefix.
const (
	pathPublishableKey      = "/getStripePublishableKey"
	pathPushPublicKey       = "/getVapidPublicKey"
	pathLogSecurityEvent    = "/logSecurityEvent"
	pathUploadCertification = "/uploadCertification"
	pathUploadFile          = "/uploadFile"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Get("/livez", h.livez)
	router.Get("/api/version", h.getServerVersion)

	if h.files != nil {
		router.Get("/files/*", http.StripPrefix("/files", h.files).ServeHTTP)
	}

	router.Route("/functions", func(r chi.Router) {
		// functions without authorization
		r.Group(func(r chi.Router) {
			r.Get(pathPushPublicKey, h.getPushPublicKey)
			r.Post(pathPushPublicKey, h.getPushPublicKey)
			r.Post(pathLogSecurityEvent, h.logSecurityEvent)
		})

		// functions that require an authenticated caller
		r.Group(func(r chi.Router) {
			r.Use(h.withIdentity, h.requireIdentity)

			r.Get(pathPublishableKey, h.getPublishableKey)
			r.Post(pathPublishableKey, h.getPublishableKey)
			r.Post(pathUploadCertification, h.uploadCertification)
			r.Post(pathUploadFile, h.uploadFile)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
