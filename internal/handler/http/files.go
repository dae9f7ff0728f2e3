// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/MKhiriev/go-edge-functions/internal/logger"
	"github.com/MKhiriev/go-edge-functions/internal/service"
	"github.com/MKhiriev/go-edge-functions/internal/utils"
	"github.com/MKhiriev/go-edge-functions/models"
)

// uploadFormField is the multipart field holding the uploaded file.
const uploadFormField = "file"

func (h *Handler) uploadFile(w http.ResponseWriter, r *http.Request) {
	stored, ok := h.upload(w, r, models.FileKindGeneric)
	if !ok {
		return
	}

	if _, err := utils.WriteJSON(w, models.FileURLResponse{FileURL: stored.URL}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing upload response")
	}
}

func (h *Handler) uploadCertification(w http.ResponseWriter, r *http.Request) {
	stored, ok := h.upload(w, r, models.FileKindCertification)
	if !ok {
		return
	}

	response := models.CertificationUploadResponse{Success: true, FileURL: stored.URL}
	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing certification upload response")
	}
}

// upload reads the "file" field of a multipart body and hands it to the file
// service. On failure the error response is already written and ok is false.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request, kind models.FileKind) (models.StoredFile, bool) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.IdentityFromContext(ctx)
	if !ok {
		h.writeError(w, r, service.ErrUnauthorized)
		return models.StoredFile{}, false
	}

	if err := r.ParseMultipartForm(h.maxMemory); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidMultipartForm, err))
		return models.StoredFile{}, false
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			log.Err(err).Msg("error removing multipart temp files")
		}
	}()

	file, header, err := r.FormFile(uploadFormField)
	if errors.Is(err, http.ErrMissingFile) {
		h.writeError(w, r, service.ErrFileRequired)
		return models.StoredFile{}, false
	}
	if err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidMultipartForm, err))
		return models.StoredFile{}, false
	}
	defer file.Close()

	stored, err := h.services.FileService.Upload(ctx, identity, kind, uploadedFile(file, header))
	if err != nil {
		h.writeError(w, r, err)
		return models.StoredFile{}, false
	}

	return stored, true
}

func uploadedFile(file multipart.File, header *multipart.FileHeader) models.UploadedFile {
	return models.UploadedFile{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     file,
	}
}
