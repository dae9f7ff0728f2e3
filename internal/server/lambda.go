// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-edge-functions/internal/handler"
	"github.com/MKhiriev/go-edge-functions/internal/logger"
	"github.com/MKhiriev/go-edge-functions/models"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
)

// lambdaServer serves the router as a Lambda function behind an API Gateway
// HTTP API (payload format 2.0).
type lambdaServer struct {
	router http.Handler
	logger *logger.Logger
}

func NewLambdaServer(handlers *handler.Handlers, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new lambda server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoHandlersProvided
	}

	return &lambdaServer{
		router: handlers.HTTP.Init(),
		logger: logger,
	}, nil
}

func (l *lambdaServer) RunServer() {
	lambda.StartWithOptions(l.handle, lambda.WithEnableSIGTERM(func() {
		l.logger.Info().Msg("lambda runtime is shutting down")
	}))
}

// Shutdown is a no-op: the Lambda runtime owns the process lifecycle.
func (l *lambdaServer) Shutdown() {}

func (l *lambdaServer) handle(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	r, err := newRequestFromEvent(ctx, event)
	if err != nil {
		l.logger.Err(err).
			Str("request_id", event.RequestContext.RequestID).
			Msg("error converting lambda event")

		body, _ := json.Marshal(models.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)})
		return events.APIGatewayV2HTTPResponse{
			StatusCode: http.StatusInternalServerError,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       string(body),
		}, nil
	}

	w := newLambdaResponseWriter()
	l.router.ServeHTTP(w, r)

	return w.response(), nil
}

// newRequestFromEvent converts an API Gateway HTTP API event into an
// *http.Request bound to ctx.
func newRequestFromEvent(ctx context.Context, event events.APIGatewayV2HTTPRequest) (*http.Request, error) {
	body := []byte(event.Body)
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errDecodingLambdaBody, err)
		}
		body = decoded
	}

	path := event.RawPath
	if path == "" {
		path = event.RequestContext.HTTP.Path
	}
	if path == "" {
		path = "/"
	}

	u, err := url.ParseRequestURI(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errBuildingRequest, err)
	}
	u.RawQuery = event.RawQueryString

	method := event.RequestContext.HTTP.Method
	if method == "" {
		method = http.MethodGet
	}

	r, err := http.NewRequestWithContext(ctx, method, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errBuildingRequest, err)
	}

	for name, value := range event.Headers {
		r.Header.Set(name, value)
	}
	if len(event.Cookies) > 0 {
		r.Header.Set("Cookie", strings.Join(event.Cookies, "; "))
	}

	sourceIP := event.RequestContext.HTTP.SourceIP
	if sourceIP != "" && r.Header.Get("X-Forwarded-For") == "" && r.Header.Get("X-Real-IP") == "" {
		r.Header.Set("X-Real-IP", sourceIP)
	}

	// the invocation id doubles as trace id unless the caller sent one
	if r.Header.Get("X-Trace-ID") == "" {
		if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
			r.Header.Set("X-Trace-ID", lc.AwsRequestID)
		} else if event.RequestContext.RequestID != "" {
			r.Header.Set("X-Trace-ID", event.RequestContext.RequestID)
		}
	}

	r.RequestURI = u.RequestURI()
	r.RemoteAddr = sourceIP
	r.ContentLength = int64(len(body))
	r.Host = r.Header.Get("Host")
	if r.Host == "" {
		r.Host = event.RequestContext.DomainName
	}

	return r, nil
}

// lambdaResponseWriter buffers the router's response for the Lambda runtime.
type lambdaResponseWriter struct {
	header      http.Header
	body        bytes.Buffer
	status      int
	wroteHeader bool
}

func newLambdaResponseWriter() *lambdaResponseWriter {
	return &lambdaResponseWriter{header: make(http.Header)}
}

func (w *lambdaResponseWriter) Header() http.Header {
	return w.header
}

func (w *lambdaResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
}

func (w *lambdaResponseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.body.Write(b)
}

// response builds the API Gateway response. Bodies that are not valid UTF-8
// are base64 encoded.
func (w *lambdaResponseWriter) response() events.APIGatewayV2HTTPResponse {
	status := w.status
	if status == 0 {
		status = http.StatusOK
	}

	headers := make(map[string]string, len(w.header))
	for name, values := range w.header {
		if name == "Set-Cookie" {
			continue
		}
		headers[name] = strings.Join(values, ",")
	}
	if _, ok := headers["Content-Length"]; !ok && w.body.Len() > 0 {
		headers["Content-Length"] = strconv.Itoa(w.body.Len())
	}

	resp := events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers:    headers,
		Cookies:    w.header.Values("Set-Cookie"),
	}

	if utf8.Valid(w.body.Bytes()) {
		resp.Body = w.body.String()
	} else {
		resp.Body = base64.StdEncoding.EncodeToString(w.body.Bytes())
		resp.IsBase64Encoded = true
	}

	return resp
}
