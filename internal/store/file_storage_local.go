// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-edge-functions/internal/logger"
	"github.com/MKhiriev/go-edge-functions/models"
)

const defaultLocalFilesBaseURL = "/files"

// LocalFileStorage keeps uploads in a directory and serves them back over
// HTTP. Returned URLs are base_url + "/" + key.
type LocalFileStorage struct {
	root    string
	baseURL string
	files   http.Handler
	logger  *logger.Logger
}

// newLocalFileStorage handles file:///absolute/path and file://./relative/path.
func newLocalFileStorage(u *url.URL, log *logger.Logger) (*LocalFileStorage, error) {
	root := u.Path
	if u.Host != "" {
		root = u.Host + "/" + strings.TrimPrefix(u.Path, "/")
	}
	if root == "" {
		return nil, fmt.Errorf("%w: empty path in %q", ErrUnsupportedLocation, u.String())
	}

	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create files directory: %w", err)
	}

	baseURL := u.Query().Get("base_url")
	if baseURL == "" {
		baseURL = defaultLocalFilesBaseURL
	}

	log.Debug().Str("root", root).Str("base_url", baseURL).Msg("created local file storage")

	return &LocalFileStorage{
		root:    root,
		baseURL: baseURL,
		files:   http.FileServer(http.Dir(root)),
		logger:  log,
	}, nil
}

// Put writes the file content to <root>/<key>. Existing files are never
// overwritten.
func (s *LocalFileStorage) Put(ctx context.Context, key string, file models.UploadedFile) (string, error) {
	path, err := s.resolve(key)
	if err != nil {
		return "", err
	}

	if err = os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return "", fmt.Errorf("%w: %w", ErrStoringFile, err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrStoringFile, err)
	}

	_, copyErr := io.Copy(f, &contextReader{ctx: ctx, r: file.Content})
	closeErr := f.Close()
	if err = errors.Join(copyErr, closeErr); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("%w: %w", ErrStoringFile, err)
	}

	return joinURL(s.baseURL, key), nil
}

// Delete removes <root>/<key>. Directories created for the key are left in
// place.
func (s *LocalFileStorage) Delete(_ context.Context, key string) error {
	path, err := s.resolve(key)
	if err != nil {
		return err
	}

	if err = os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrDeletingFile, err)
	}

	return nil
}

// ServeHTTP serves stored files by key. Directory listings are not exposed.
func (s *LocalFileStorage) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
		http.NotFound(w, r)
		return
	}

	s.files.ServeHTTP(w, r)
}

func (s *LocalFileStorage) resolve(key string) (string, error) {
	if key == "" {
		return "", ErrInvalidStorageKey
	}

	path := filepath.Join(s.root, filepath.FromSlash(key))
	rel, err := filepath.Rel(s.root, path)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrInvalidStorageKey, key)
	}

	return path, nil
}

// contextReader stops a copy once ctx is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
