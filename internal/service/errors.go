// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// ErrorKind is the closed set of failure categories reported by services.
// The transport layer maps each kind to exactly one status code.
type ErrorKind int

const (
	// KindDelegatedFailure covers every failure of a delegated call or of
	// request parsing. It is the kind of any error that is not an [*Error].
	KindDelegatedFailure ErrorKind = iota

	// KindUnauthorized means an authenticated caller is required but absent.
	KindUnauthorized

	// KindBadRequest means required input is missing.
	KindBadRequest

	// KindConfiguration means a required configuration value is absent.
	KindConfiguration
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindBadRequest:
		return "bad_request"
	case KindConfiguration:
		return "configuration"
	default:
		return "delegated_failure"
	}
}

// Error is a classified service error.
//
// Message is safe to show to callers for every kind except
// [KindDelegatedFailure]; Err carries the underlying cause and is only
// logged.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Err == nil:
		return e.Message
	case e.Message == "":
		return e.Err.Error()
	default:
		return e.Message + ": " + e.Err.Error()
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first [*Error] in err's chain, or
// [KindDelegatedFailure] when there is none.
func KindOf(err error) ErrorKind {
	var serviceErr *Error
	if errors.As(err, &serviceErr) {
		return serviceErr.Kind
	}
	return KindDelegatedFailure
}

// PublicMessage returns the text that may be sent to the caller for err.
func PublicMessage(err error) string {
	var serviceErr *Error
	if !errors.As(err, &serviceErr) || serviceErr.Kind == KindDelegatedFailure || serviceErr.Message == "" {
		return ""
	}
	return serviceErr.Message
}

// newDelegatedError wraps the failure of a delegated call.
func newDelegatedError(operation string, err error) error {
	return &Error{Kind: KindDelegatedFailure, Message: operation, Err: err}
}

// Well-known service errors.
var (
	ErrUnauthorized = &Error{Kind: KindUnauthorized, Message: "Unauthorized"}
	ErrFileRequired = &Error{Kind: KindBadRequest, Message: "file is required"}

	ErrPublishableKeyNotConfigured = &Error{Kind: KindConfiguration, Message: "STRIPE_PUBLISHABLE_KEY is not configured"}
	ErrPushPublicKeyNotConfigured  = &Error{Kind: KindConfiguration, Message: "VAPID_PUBLIC_KEY is not configured"}
)

// Construction errors returned while wiring services at startup.
var (
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")
	ErrUnknownIdentityProvider = errors.New("unknown identity provider")
	ErrEmptyUploadedFile       = errors.New("uploaded file has no content")
)
