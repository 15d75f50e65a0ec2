// Copyright (c) 2026 Recalldash. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Recall Defaults: Result caps and fallback year bounds.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "recalldash-api"
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
	// It is also applied as the per-connection statement_timeout on PostgreSQL,
	// so a runaway aggregation can never outlive its request.
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

// # Recall Defaults

const (
	// DefaultRecallLimit caps the recall list when the caller does not supply one.
	DefaultRecallLimit = 500

	// MaxRecallLimit is the hard upper bound for a single recall listing.
	MaxRecallLimit = 1000

	// DefaultRankingTopN is the cutoff for maker/model ranking charts.
	DefaultRankingTopN = 20

	// MaxRankingTopN is the hard upper bound for ranking cutoffs.
	MaxRankingTopN = 100

	// MaxSearchLen bounds the free-text search token (Unicode characters).
	MaxSearchLen = 100

	// FallbackMinYear is the lower year bound when no model has a complete
	// production period on record.
	FallbackMinYear = 2000
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
	FieldError   = "error"
	FieldCode    = "code"
	FieldDetails = "details"
	FieldCount   = "count"
	FieldStatus  = "status"
	FieldChecks  = "checks"
)

// # Database Schemas

const (
	SchemaCore = "core"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixMakerOptions = "options:makers:"
	RedisKeyYearBounds      = "options:year_bounds"

	// OptionCacheTTL is how long dropdown option lists stay cached.
	// Recall data changes via a nightly ingestion job, so staleness in
	// the order of minutes is acceptable.
	OptionCacheTTL = 5 * time.Minute
)
