// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: nhat.lepham.dev@gmail.com

// Package sec provides cryptographic primitives and visitor token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Token signing, Fingerprint
// hashing) from the domain logic. Inkwell has no user accounts: the only
// identity in the system is the anonymous visitor ID minted by the server
// and persisted client-side, so the token layer exists purely to make those
// identifiers tamper-evident.
package sec

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// VisitorClaims represents the payload embedded inside a visitor JWT.
//
// # Why custom claims?
//
// By embedding the VisitorID directly inside the JWT, engagement handlers can
// trust a resubmitted identifier WITHOUT any server-side session storage.
// The fingerprint digest travels alongside for abuse analysis.
type VisitorClaims struct {
	jwt.RegisteredClaims

	// Custom application claims are abbreviated to keep the JWT payload small.
	VisitorID   string `json:"vid"`
	Fingerprint string `json:"fpr,omitempty"`
}

// TokenService handles generation and verification of visitor JWTs using HS256.
//
// HS256 with a shared secret (rather than the RSA keypair a multi-service
// deployment would need) is sufficient here: the same process both mints
// and verifies every token.
type TokenService struct {
	secret []byte
	issuer string
}

// NewTokenService creates a new TokenService from the configured session secret.
func NewTokenService(secret string, issuer string) (*TokenService, error) {
	if len(secret) < 32 {
		return nil, fmt.Errorf("sec: session secret must be at least 32 bytes, got %d", len(secret))
	}

	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
	}, nil
}

// GenerateVisitorToken creates a new signed JWT for an anonymous visitor.
func (service *TokenService) GenerateVisitorToken(visitorID, fingerprint string, timeToLive time.Duration) (string, error) {
	currentTime := time.Now()
	claims := VisitorClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   visitorID,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
		VisitorID:   visitorID,
		Fingerprint: fingerprint,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign visitor token: %w", err)
	}

	return signedToken, nil
}

// VerifyToken checks the signature and validity of a visitor JWT string.
func (service *TokenService) VerifyToken(tokenString string) (*VisitorClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &VisitorClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("sec: invalid token: %w", err)
	}

	claims, ok := token.Claims.(*VisitorClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("sec: invalid token claims")
	}

	return claims, nil
}
