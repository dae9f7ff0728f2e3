// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-edge-functions/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// makeRequest creates a test request with a logger writing to buf in its
// context, the same way withTraceID does.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		header           http.Header
		handlerStatus    int
		handlerResponse  string
		checkLogContains []string
	}{
		{
			name:            "POST 200",
			method:          http.MethodPost,
			path:            "/functions/logSecurityEvent",
			handlerStatus:   http.StatusOK,
			handlerResponse: `{"success":true}`,
			checkLogContains: []string{
				`"level":"info"`,
				`"method":"POST"`,
				`"uri":"/functions/logSecurityEvent"`,
				`"status":200`,
				`"duration":`,
				`"size":16`,
			},
		},
		{
			name:            "401 logged at info",
			method:          http.MethodPost,
			path:            "/functions/uploadFile",
			handlerStatus:   http.StatusUnauthorized,
			handlerResponse: `{"error":"Unauthorized"}`,
			checkLogContains: []string{
				`"level":"info"`,
				`"status":401`,
			},
		},
		{
			name:            "500 logged at warn",
			method:          http.MethodGet,
			path:            "/functions/getVapidPublicKey",
			handlerStatus:   http.StatusInternalServerError,
			handlerResponse: `{"error":"Internal Server Error"}`,
			checkLogContains: []string{
				`"level":"warn"`,
				`"status":500`,
			},
		},
		{
			name:            "query parameters preserved in uri",
			method:          http.MethodGet,
			path:            "/api/version?verbose=1",
			handlerStatus:   http.StatusOK,
			handlerResponse: "{}",
			checkLogContains: []string{
				`"uri":"/api/version?verbose=1"`,
			},
		},
		{
			name:          "forwarded ip logged",
			method:        http.MethodGet,
			path:          "/livez",
			header:        http.Header{"X-Forwarded-For": {"203.0.113.7, 10.0.0.1"}},
			handlerStatus: http.StatusOK,
			checkLogContains: []string{
				`"ip_address":"203.0.113.7"`,
			},
		},
		{
			name:          "unknown ip logged",
			method:        http.MethodGet,
			path:          "/livez",
			handlerStatus: http.StatusNoContent,
			checkLogContains: []string{
				`"ip_address":"unknown"`,
				`"size":0`,
			},
		},
	}

	h := newTestHandler()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			req := makeRequest(tt.method, tt.path, &logBuf)
			for k, v := range tt.header {
				req.Header[k] = v
			}
			rr := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.handlerStatus, rr.Code)

			logOutput := logBuf.String()
			for _, expected := range tt.checkLogContains {
				assert.Contains(t, logOutput, expected)
			}
		})
	}
}

func TestWithLogging_ResponseSize(t *testing.T) {
	var logBuf bytes.Buffer

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 512)))
		_, _ = w.Write([]byte(strings.Repeat("b", 512)))
	})

	req := makeRequest(http.MethodGet, "/files/a.txt", &logBuf)
	rr := httptest.NewRecorder()
	newTestHandler().withLogging(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, logBuf.String(), `"size":1024`)
	assert.Contains(t, logBuf.String(), `"status":200`)
}

func TestWithLogging_DurationAccuracy(t *testing.T) {
	delay := 50 * time.Millisecond
	var logBuf bytes.Buffer

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(delay)
		w.WriteHeader(http.StatusOK)
	})

	req := makeRequest(http.MethodGet, "/slow", &logBuf)
	rr := httptest.NewRecorder()

	start := time.Now()
	newTestHandler().withLogging(next).ServeHTTP(rr, req)

	assert.GreaterOrEqual(t, time.Since(start), delay)
	assert.Contains(t, logBuf.String(), `"duration":`)
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	var logBuf bytes.Buffer

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	})

	req := makeRequest(http.MethodGet, "/panic", &logBuf)
	rr := httptest.NewRecorder()

	assert.Panics(t, func() {
		newTestHandler().withLogging(next).ServeHTTP(rr, req)
	}, "withLogging should not recover panics")
}

func TestWithLogging_NopLogger(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	nop := logger.Nop()
	req := httptest.NewRequest(http.MethodGet, "/nop", nil)
	req = req.WithContext(nop.Logger.WithContext(req.Context()))

	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		newTestHandler().withLogging(next).ServeHTTP(rr, req)
	})
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestWithLogging_EmptyHandlerLogsOK(t *testing.T) {
	var logBuf bytes.Buffer

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	rr := httptest.NewRecorder()
	newTestHandler().withLogging(next).ServeHTTP(rr, makeRequest(http.MethodGet, "/livez", &logBuf))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, logBuf.String(), `"status":200`)
}

func TestWithLogging_LogsRoutePattern(t *testing.T) {
	var logBuf bytes.Buffer

	router := chi.NewRouter()
	router.Use(newTestHandler().withLogging)
	router.Get("/files/*", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/files/cert/a.pdf", &logBuf))

	assert.Contains(t, logBuf.String(), `"route":"/files/*"`)
	assert.Contains(t, logBuf.String(), `"uri":"/files/cert/a.pdf"`)
}
