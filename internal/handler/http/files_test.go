// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/MKhiriev/go-edge-functions/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newMultipartRequest builds a POST request whose body holds the given field
// as a file part, plus a plain "note" text field.
func newMultipartRequest(t *testing.T, path, field, fileName, contentType string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	require.NoError(t, mw.WriteField("note", "hello"))
	if field != "" {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, fileName))
		header.Set("Content-Type", contentType)
		part, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

// ─────────────────────────────────────────────
// uploadFile / uploadCertification
// ─────────────────────────────────────────────

func TestUploadFile_Success(t *testing.T) {
	h, m := newMockedHandler(t)
	content := []byte("%PDF-1.7 resume")

	m.files.EXPECT().
		Upload(gomock.Any(), testIdentity, models.FileKindGeneric, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.Identity, _ models.FileKind, file models.UploadedFile) (models.StoredFile, error) {
			assert.Equal(t, "resume.pdf", file.Name)
			assert.Equal(t, "application/pdf", file.ContentType)
			assert.Equal(t, int64(len(content)), file.Size)
			got, err := io.ReadAll(file.Content)
			require.NoError(t, err)
			assert.Equal(t, content, got)

			return models.StoredFile{ID: "f-1", URL: "https://cdn.example.com/file/user-1/f-1/resume.pdf", Size: file.Size}, nil
		})

	req := newMultipartRequest(t, "/functions/uploadFile", "file", "resume.pdf", "application/pdf", content)
	rec := httptest.NewRecorder()

	h.uploadFile(rec, withCaller(req, testIdentity))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"file_url":"https://cdn.example.com/file/user-1/f-1/resume.pdf"}`, rec.Body.String())
}

func TestUploadCertification_Success(t *testing.T) {
	h, m := newMockedHandler(t)

	m.files.EXPECT().
		Upload(gomock.Any(), testIdentity, models.FileKindCertification, gomock.Any()).
		Return(models.StoredFile{ID: "c-1", URL: "/files/certification/user-1/c-1/cert.png"}, nil)

	req := newMultipartRequest(t, "/functions/uploadCertification", "file", "cert.png", "image/png", []byte{0x89, 'P', 'N', 'G'})
	rec := httptest.NewRecorder()

	h.uploadCertification(rec, withCaller(req, testIdentity))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"file_url":"/files/certification/user-1/c-1/cert.png"}`, rec.Body.String())
}

func TestUpload_LeavesSuccessLogToService(t *testing.T) {
	h, m := newMockedHandler(t)
	m.files.EXPECT().
		Upload(gomock.Any(), testIdentity, models.FileKindGeneric, gomock.Any()).
		Return(models.StoredFile{ID: "f-1", URL: "/files/f-1"}, nil)

	var logBuf bytes.Buffer
	req := newMultipartRequest(t, "/functions/uploadFile", "file", "a.txt", "text/plain", []byte("a"))
	req = req.WithContext(zerolog.New(&logBuf).WithContext(req.Context()))
	rec := httptest.NewRecorder()

	h.uploadFile(rec, withCaller(req, testIdentity))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, logBuf.String(), "file uploaded")
}

func TestUpload_Errors(t *testing.T) {
	tests := []struct {
		name       string
		request    func(t *testing.T) *http.Request
		anonymous  bool
		uploadErr  error
		wantUpload bool
		wantStatus int
		wantBody   string
	}{
		{
			name: "no identity",
			request: func(t *testing.T) *http.Request {
				return newMultipartRequest(t, "/functions/uploadFile", "file", "a.txt", "text/plain", []byte("a"))
			},
			anonymous:  true,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Unauthorized"}`,
		},
		{
			name: "file field missing",
			request: func(t *testing.T) *http.Request {
				return newMultipartRequest(t, "/functions/uploadFile", "", "", "", nil)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"file is required"}`,
		},
		{
			name: "file under another field name",
			request: func(t *testing.T) *http.Request {
				return newMultipartRequest(t, "/functions/uploadFile", "document", "a.txt", "text/plain", []byte("a"))
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"file is required"}`,
		},
		{
			name: "not a multipart body",
			request: func(t *testing.T) *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/functions/uploadFile", strings.NewReader(`{"file":"a"}`))
				req.Header.Set("Content-Type", "application/json")
				return req
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal Server Error"}`,
		},
		{
			name: "truncated multipart body",
			request: func(t *testing.T) *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/functions/uploadFile", strings.NewReader("--XYZ\r\nContent-Disposition: form-data; name=\"file\"; filename=\"a\"\r\n\r\nabc"))
				req.Header.Set("Content-Type", "multipart/form-data; boundary=XYZ")
				return req
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal Server Error"}`,
		},
		{
			name: "storage failure",
			request: func(t *testing.T) *http.Request {
				return newMultipartRequest(t, "/functions/uploadFile", "file", "a.txt", "text/plain", []byte("a"))
			},
			uploadErr:  errors.New("bucket unreachable"),
			wantUpload: true,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t)
			if tt.wantUpload {
				m.files.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(models.StoredFile{}, tt.uploadErr)
			}

			req := tt.request(t)
			if !tt.anonymous {
				req = withCaller(req, testIdentity)
			}
			rec := httptest.NewRecorder()

			h.uploadFile(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
