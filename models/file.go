// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"io"
	"time"
)

// FileKind tells which upload function received a file. It becomes the
// first segment of the storage key.
type FileKind string

const (
	FileKindGeneric       FileKind = "file"
	FileKindCertification FileKind = "certification"
)

// UploadedFile is a file taken from the multipart "file" field of a request.
// Content is owned by the request and must not be used after the handler returns.
type UploadedFile struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.Reader
}

// StoredFile describes a file that has been handed to the file storage
// and recorded in the files table.
type StoredFile struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Kind        FileKind  `json:"kind"`
	Name        string    `json:"name"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	StorageKey  string    `json:"-"`
	URL         string    `json:"file_url"`
	CreatedAt   time.Time `json:"created_at"`
}
