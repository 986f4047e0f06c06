// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: nhat.lepham.dev@gmail.com

/*
Package visitor mints anonymous visitor identities.

Inkwell has no accounts. The only identity is a server-generated visitor ID
that the client persists and resubmits with engagement calls. The identity
ships inside a signed token so a resubmitted ID is tamper-evident without
any server-side session state.
*/
package visitor

import (
	"context"
	"log/slog"

	"github.com/nhatlepham/inkwell/internal/platform/apperr"
	"github.com/nhatlepham/inkwell/internal/platform/constants"
	"github.com/nhatlepham/inkwell/internal/platform/sec"
	"github.com/nhatlepham/inkwell/pkg/uuidv7"
)

// Identity is the minted visitor credential returned to the client.
type Identity struct {
	VisitorID string `json:"visitor_id"`
	Token     string `json:"token"`

	// Fingerprint is the request-attribute digest bound into the token.
	Fingerprint string `json:"fingerprint"`
}

type Service struct {
	tokens *sec.TokenService
	logger *slog.Logger
}

func NewService(tokens *sec.TokenService, logger *slog.Logger) *Service {
	return &Service{
		tokens: tokens,
		logger: logger,
	}
}

// Mint generates a fresh visitor identity bound to the request fingerprint.
func (service *Service) Mint(ctx context.Context, userAgent, acceptLanguage, remoteIP string) (*Identity, error) {
	visitorID := uuidv7.New()
	fingerprint := sec.Fingerprint(userAgent, acceptLanguage, remoteIP)

	token, err := service.tokens.GenerateVisitorToken(visitorID, fingerprint, constants.VisitorTokenTTL)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	service.logger.Info("visitor_minted", slog.String("visitor_id", visitorID))

	return &Identity{
		VisitorID:   visitorID,
		Token:       token,
		Fingerprint: fingerprint,
	}, nil
}
