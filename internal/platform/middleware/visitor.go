// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: nhat.lepham.dev@gmail.com

package middleware

import (
	"net/http"
	"strings"

	"github.com/nhatlepham/inkwell/internal/platform/apperr"
	"github.com/nhatlepham/inkwell/internal/platform/ctxutil"
	"github.com/nhatlepham/inkwell/internal/platform/respond"
	"github.com/nhatlepham/inkwell/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify visitor tokens in middleware.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the middleware from the `sec` token
// service implementation, allowing us to easily inject mocks during unit testing.
type TokenVerifier interface {
	VerifyToken(tokenStr string) (*sec.VisitorClaims, error)
}

// VisitorToken extracts and verifies the visitor JWT from the Authorization header.
//
// # Flow
//  1. Check for 'Authorization: Bearer <token>' header.
//  2. If absent, request proceeds as anonymous; every page is public.
//  3. If present, parse and verify the JWT via [TokenVerifier].
//  4. Inject [*sec.VisitorClaims] into the request context for downstream use.
//
// A malformed or expired token is rejected rather than ignored: a client
// presenting a token expects its identity to be honored, and silently
// dropping it would let view deduplication drift.
func VisitorToken(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get("Authorization")

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Format Validation ──────────────────────────────────────────
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				respond.Error(writer, request, apperr.Unauthorized("Invalid authorization format"))
				return
			}

			// ── 3. Token Verification ─────────────────────────────────────────
			tokenStr := parts[1]
			claims, err := verifier.VerifyToken(tokenStr)
			if err != nil {
				respond.Error(writer, request, apperr.Unauthorized("Invalid or expired visitor token"))
				return
			}

			// ── 4. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithVisitor(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}
