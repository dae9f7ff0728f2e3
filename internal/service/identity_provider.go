// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-edge-functions/internal/config"
	"github.com/MKhiriev/go-edge-functions/internal/logger"
	"github.com/MKhiriev/go-edge-functions/internal/utils"
	"github.com/MKhiriev/go-edge-functions/models"
)

// remoteUserPath is the platform endpoint returning the user behind a token.
const remoteUserPath = "/auth/v1/user"

// NewIdentityProvider creates the provider selected by cfg.Provider.
func NewIdentityProvider(cfg config.Auth, logger *logger.Logger) (IdentityProvider, error) {
	switch cfg.Provider {
	case config.AuthProviderJWT:
		return NewJWTIdentityProvider(cfg, logger), nil
	case config.AuthProviderRemote:
		return NewRemoteIdentityProvider(cfg, logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownIdentityProvider, cfg.Provider)
	}
}

// jwtIdentityProvider validates HS256 access tokens locally.
type jwtIdentityProvider struct {
	// tokenSignKey is the HMAC secret used to verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the expected "iss" claim. Empty disables the check.
	tokenIssuer string

	logger *logger.Logger
}

func NewJWTIdentityProvider(cfg config.Auth, logger *logger.Logger) IdentityProvider {
	return &jwtIdentityProvider{
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		logger:       logger,
	}
}

func (p *jwtIdentityProvider) Identify(ctx context.Context, tokenString string) (models.Identity, bool, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, p.tokenSignKey, p.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Str("func", "*jwtIdentityProvider.Identify").Msg("token rejected")
		return models.Identity{}, false, nil
	}

	identity, err := token.Identity()
	if err != nil {
		log.Debug().Err(err).Str("func", "*jwtIdentityProvider.Identify").Msg("token has no subject")
		return models.Identity{}, false, nil
	}

	return identity, true, nil
}

// remoteUser is the subset of the platform user object the service reads.
type remoteUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// remoteIdentityProvider asks the hosting platform who owns the token.
type remoteIdentityProvider struct {
	client *utils.HTTPClient
	apiKey string

	logger *logger.Logger
}

func NewRemoteIdentityProvider(cfg config.Auth, logger *logger.Logger) IdentityProvider {
	return &remoteIdentityProvider{
		client: utils.NewHTTPClient(cfg.BaseURL, cfg.Timeout),
		apiKey: cfg.APIKey,
		logger: logger,
	}
}

// Identify calls GET /auth/v1/user with the caller's token.
// 200 yields the identity, 401 and 403 mean no identity, any other status
// or a transport error is a delegated failure.
func (p *remoteIdentityProvider) Identify(ctx context.Context, token string) (models.Identity, bool, error) {
	log := logger.FromContext(ctx)

	request := p.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&remoteUser{})
	if p.apiKey != "" {
		request.SetHeader("apikey", p.apiKey)
	}

	resp, err := request.Get(remoteUserPath)
	if err != nil {
		log.Err(err).Str("func", "*remoteIdentityProvider.Identify").Msg("identity lookup failed")
		return models.Identity{}, false, newDelegatedError("identity lookup", err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		user, ok := resp.Result().(*remoteUser)
		if !ok || user.ID == "" {
			log.Warn().Str("func", "*remoteIdentityProvider.Identify").Msg("identity provider returned a user without id")
			return models.Identity{}, false, nil
		}
		return models.Identity{ID: user.ID, Email: user.Email, Role: user.Role}, true, nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return models.Identity{}, false, nil
	default:
		err = fmt.Errorf("unexpected identity provider status %d", resp.StatusCode())
		log.Err(err).Str("func", "*remoteIdentityProvider.Identify").Msg("identity lookup failed")
		return models.Identity{}, false, newDelegatedError("identity lookup", err)
	}
}
