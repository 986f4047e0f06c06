// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: nhat.lepham.dev@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Engagement: Redis key taxonomy for the engagement document store.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "inkwell-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Visitor Identity

const (
	// VisitorIssuer is the standard 'iss' claim in visitor JWTs.
	VisitorIssuer = "inkwell.dev"

	// VisitorTokenTTL is how long a minted visitor token stays valid. Visitor
	// tokens are long-lived on purpose: the identifier must survive across
	// sessions so that view deduplication holds.
	VisitorTokenTTL = 365 * 24 * time.Hour
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # JSON Field Identifiers

const (
	FieldData    = "data"
	FieldMeta    = "meta"
	FieldError   = "error"
	FieldCode    = "code"
	FieldDetails = "details"
	FieldCount   = "count"
	FieldStatus  = "status"
	FieldChecks  = "checks"
)

// # Content Conventions

const (
	// SeriesManifestFile is the per-group manifest filename inside the content tree.
	SeriesManifestFile = "meta.json"

	// ContentFileExtension is the extension of publishable content files.
	ContentFileExtension = ".md"

	// DefaultAuthor is used when a post's front matter omits the author field.
	DefaultAuthor = "Anonymous"

	// DefaultSuggestionCount is how many related posts are returned when the
	// client does not ask for a specific amount.
	DefaultSuggestionCount = 3

	// MaxSuggestionCount caps the related-post count a client may request.
	MaxSuggestionCount = 10
)

// # Redis Prefixes (Engagement Taxonomy)

const (
	RedisPrefixViews      = "engagement:views:"
	RedisPrefixViewUsers  = "engagement:views:users:"
	RedisPrefixLikes      = "engagement:likes:"
	RedisPrefixReactions  = "engagement:reactions:"
	RedisPrefixReactUsers = "engagement:reactions:users:"
)
