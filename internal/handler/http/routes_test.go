// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-edge-functions/internal/config"
	"github.com/MKhiriev/go-edge-functions/internal/logger"
	"github.com/MKhiriev/go-edge-functions/internal/service"
	"github.com/MKhiriev/go-edge-functions/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const validToken = "valid-token"

// newTestRouter wires Init() over mocked services. The identity provider
// accepts only validToken.
func newTestRouter(t *testing.T) (http.Handler, serviceMocks) {
	t.Helper()

	h, m := newMockedHandler(t)
	m.identity.EXPECT().Identify(gomock.Any(), validToken).Return(testIdentity, true, nil).AnyTimes()
	m.identity.EXPECT().Identify(gomock.Any(), gomock.Not(validToken)).Return(models.Identity{}, false, nil).AnyTimes()

	return h.Init(), m
}

func serve(router http.Handler, method, path, token string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// ─────────────────────────────────────────────
// Public functions
// ─────────────────────────────────────────────

func TestInit_PublicRoutes(t *testing.T) {
	router, m := newTestRouter(t)
	m.keys.EXPECT().GetPushPublicKey(gomock.Any()).Return("BOr1vapid", nil).Times(2)
	m.security.EXPECT().LogEvent(gomock.Any(), gomock.Any()).Return(nil)
	m.appInfo.EXPECT().GetAppBuildInfo(gomock.Any()).Return(models.AppBuildInfo{Version: "1.0.0"})

	cases := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/functions/getVapidPublicKey", ""},
		{http.MethodPost, "/functions/getVapidPublicKey", ""},
		{http.MethodPost, "/functions/logSecurityEvent", `{"severity":"low"}`},
		{http.MethodGet, "/api/version", ""},
		{http.MethodGet, "/livez", ""},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := serve(router, tc.method, tc.path, "", strings.NewReader(tc.body))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

// ─────────────────────────────────────────────
// Auth-gated functions
// ─────────────────────────────────────────────

func TestInit_ProtectedRoutes_RequireIdentity(t *testing.T) {
	router, _ := newTestRouter(t)

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/functions/getStripePublishableKey"},
		{http.MethodPost, "/functions/getStripePublishableKey"},
		{http.MethodPost, "/functions/uploadCertification"},
		{http.MethodPost, "/functions/uploadFile"},
	}

	for _, tc := range cases {
		for _, token := range []string{"", "expired-token"} {
			t.Run(tc.method+" "+tc.path+" token="+token, func(t *testing.T) {
				rec := serve(router, tc.method, tc.path, token, nil)

				assert.Equal(t, http.StatusUnauthorized, rec.Code)
				assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
			})
		}
	}
}

func TestInit_ProtectedRoutes_PassWithValidToken(t *testing.T) {
	router, m := newTestRouter(t)
	m.keys.EXPECT().GetPublishableKey(gomock.Any()).Return("pk_live_1", nil)

	rec := serve(router, http.MethodPost, "/functions/getStripePublishableKey", validToken, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"publishableKey":"pk_live_1"}`, rec.Body.String())
}

func TestInit_UploadWithValidToken(t *testing.T) {
	router, m := newTestRouter(t)
	m.files.EXPECT().
		Upload(gomock.Any(), testIdentity, models.FileKindGeneric, gomock.Any()).
		Return(models.StoredFile{URL: "/files/file/user-1/id/a.txt"}, nil)

	req := newMultipartRequest(t, "/functions/uploadFile", "file", "a.txt", "text/plain", []byte("a"))
	req.Header.Set("Authorization", "Bearer "+validToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"file_url":"/files/file/user-1/id/a.txt"}`, rec.Body.String())
}

func TestInit_PublicRoutes_DoNotResolveIdentity(t *testing.T) {
	h, m := newMockedHandler(t)
	m.keys.EXPECT().GetPushPublicKey(gomock.Any()).Return("BOr1vapid", nil)
	// no Identify expectation: an unexpected call fails the test

	rec := serve(h.Init(), http.MethodGet, "/functions/getVapidPublicKey", validToken, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

// ─────────────────────────────────────────────
// Unknown routes and methods
// ─────────────────────────────────────────────

func TestInit_UnknownRoutes_Return404(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, path := range []string{"/", "/functions", "/functions/unknown", "/api/users"} {
		t.Run(path, func(t *testing.T) {
			assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, path, "", nil).Code)
		})
	}
}

func TestInit_WrongMethod_Returns404NotMethodNotAllowed(t *testing.T) {
	router, _ := newTestRouter(t)

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/functions/logSecurityEvent"},
		{http.MethodGet, "/functions/uploadFile"},
		{http.MethodDelete, "/functions/getVapidPublicKey"},
		{http.MethodPut, "/functions/getStripePublishableKey"},
		{http.MethodPost, "/api/version"},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := serve(router, tc.method, tc.path, validToken, nil)
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

// ─────────────────────────────────────────────
// Trace id and panics
// ─────────────────────────────────────────────

func TestInit_TraceIDHeader_AlwaysSet(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, path := range []string{"/livez", "/functions/uploadFile", "/nonexistent"} {
		rec := serve(router, http.MethodPost, path, "", nil)
		assert.NotEmpty(t, rec.Header().Get(traceIDHeader), path)
	}
}

func TestInit_TraceIDHeader_EchoedFromRequest(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/livez", nil)
	req.Header.Set(traceIDHeader, "client-trace-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "client-trace-1", rec.Header().Get(traceIDHeader))
}

func TestInit_PanicBecomes500(t *testing.T) {
	router, m := newTestRouter(t)
	m.keys.EXPECT().GetPushPublicKey(gomock.Any()).DoAndReturn(func(any) (string, error) {
		panic("unexpected")
	})

	rec := serve(router, http.MethodGet, "/functions/getVapidPublicKey", "", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// Local file serving
// ─────────────────────────────────────────────

func TestInit_FilesRoute(t *testing.T) {
	files := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("served " + r.URL.Path))
	})

	t.Run("mounted", func(t *testing.T) {
		h := NewHandler(&service.Services{}, config.Files{}, files, logger.Nop())
		rec := serve(h.Init(), http.MethodGet, "/files/file/user-1/id/a.txt", "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "served /file/user-1/id/a.txt", rec.Body.String())
	})

	t.Run("not mounted", func(t *testing.T) {
		h := NewHandler(&service.Services{}, config.Files{}, nil, logger.Nop())
		rec := serve(h.Init(), http.MethodGet, "/files/file/user-1/id/a.txt", "", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
