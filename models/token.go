// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set carried by access tokens issued for the
// edge functions. It extends the registered claims with the caller's e-mail
// and role so that an [Identity] can be built without a provider round trip.
type TokenClaims struct {
	jwt.RegisteredClaims

	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

// Token wraps a parsed or freshly signed JWT.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) and is empty for tokens obtained by parsing.
type Token struct {
	JWT *jwt.Token `json:"-"`

	Claims TokenClaims `json:"-"`

	SignedString string `json:"-"`
}

// Identity builds the caller identity from the token claims.
//
// Returns an error if the "sub" claim is missing or empty.
func (t *Token) Identity() (Identity, error) {
	subject, err := t.Claims.GetSubject()
	if err != nil {
		return Identity{}, fmt.Errorf("error extracting subject from token: %w", err)
	}
	if subject == "" {
		return Identity{}, fmt.Errorf("empty subject in token")
	}

	return Identity{
		ID:    subject,
		Email: t.Claims.Email,
		Role:  t.Claims.Role,
	}, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
