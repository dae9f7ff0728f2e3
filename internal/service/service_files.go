// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"path"
	"strings"
	"time"
	"unicode"

	"github.com/MKhiriev/go-edge-functions/internal/logger"
	"github.com/MKhiriev/go-edge-functions/internal/store"
	"github.com/MKhiriev/go-edge-functions/internal/utils"
	"github.com/MKhiriev/go-edge-functions/models"
)

const (
	defaultFileName   = "file"
	maxFileNameLength = 255
)

// IDGenerator produces unique identifiers for stored files.
type IDGenerator interface {
	Generate() string
}

// fileService hands uploads to the file storage and records them in the
// files table. It does not inspect file type, size or content.
type fileService struct {
	fileStorage    store.FileStorage
	fileRepository store.FileRepository
	idGenerator    IDGenerator
	now            func() time.Time

	logger *logger.Logger
}

func NewFileService(fileStorage store.FileStorage, fileRepository store.FileRepository, logger *logger.Logger) FileService {
	return &fileService{
		fileStorage:    fileStorage,
		fileRepository: fileRepository,
		idGenerator:    utils.NewUUIDGenerator(),
		now:            time.Now,
		logger:         logger,
	}
}

// Upload stores file under <kind>/<owner id>/<file id>/<file name> and
// records it. Both steps are delegated; their failures are returned as
// [KindDelegatedFailure] errors. A stored object whose record fails is
// removed again.
func (s *fileService) Upload(ctx context.Context, owner models.Identity, kind models.FileKind, file models.UploadedFile) (models.StoredFile, error) {
	log := logger.FromContext(ctx)

	if owner.ID == "" {
		return models.StoredFile{}, ErrUnauthorized
	}
	if file.Content == nil {
		return models.StoredFile{}, newDelegatedError("read uploaded file", ErrEmptyUploadedFile)
	}

	stored := models.StoredFile{
		ID:          s.idGenerator.Generate(),
		OwnerID:     owner.ID,
		Kind:        kind,
		Name:        sanitizeFileName(file.Name),
		ContentType: file.ContentType,
		Size:        file.Size,
	}
	stored.StorageKey = path.Join(string(kind), sanitizeFileName(owner.ID), stored.ID, stored.Name)

	url, err := s.fileStorage.Put(ctx, stored.StorageKey, file)
	if err != nil {
		log.Err(err).
			Str("func", "*fileService.Upload").
			Str("storage_key", stored.StorageKey).
			Msg("error storing uploaded file")
		return models.StoredFile{}, newDelegatedError("store file", err)
	}
	stored.URL = url
	stored.CreatedAt = s.now().UTC()

	if err = s.fileRepository.Save(ctx, stored); err != nil {
		log.Err(err).
			Str("func", "*fileService.Upload").
			Str("file_id", stored.ID).
			Msg("error recording stored file")
		s.discard(ctx, stored.StorageKey)
		return models.StoredFile{}, newDelegatedError("record file", err)
	}

	log.Info().
		Str("file_id", stored.ID).
		Str("kind", string(kind)).
		Int64("size", stored.Size).
		Msg("file uploaded")

	return stored, nil
}

// discard removes an object whose record could not be saved. It runs even
// when ctx is already cancelled; a failure is logged and left for cleanup.
func (s *fileService) discard(ctx context.Context, key string) {
	if err := s.fileStorage.Delete(context.WithoutCancel(ctx), key); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*fileService.discard").
			Str("storage_key", key).
			Msg("error removing unrecorded file, object left in storage")
	}
}

// sanitizeFileName reduces a client supplied name to a single safe path
// segment.
func sanitizeFileName(name string) string {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}

	name = strings.Map(func(r rune) rune {
		switch {
		case unicode.IsControl(r):
			return -1
		case strings.ContainsRune(`<>:"|?*`, r):
			return '_'
		default:
			return r
		}
	}, name)

	name = strings.Trim(name, " .")
	if name == "" {
		return defaultFileName
	}

	if len(name) > maxFileNameLength {
		name = strings.ToValidUTF8(name[:maxFileNameLength], "")
	}

	return name
}
