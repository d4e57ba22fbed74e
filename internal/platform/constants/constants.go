// Copyright (c) 2026 SSBackend. All rights reserved.
// Author: sri.raksha.dev@gmail.com

/*
Package constants provides centralized, immutable values for the service.

It defines default timeouts, security parameters, and cross-cutting keys
shared between layers.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Security: JWT issuer, token lifetime, bcrypt work factor.
  - CORS: the static origin allowlist for the SPA frontend.

Using this package keeps magic strings and numbers out of the flow logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "ssbackend-api"
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

	// ShutdownTimeout is how long we wait for in-flight requests during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Security

const (
	// AuthIssuer is the standard 'iss' claim in issued JWTs.
	AuthIssuer = "ssbackend"

	// SessionTokenTTL is the fixed lifetime of an issued session token.
	// expiresAt is always issuedAt + SessionTokenTTL.
	SessionTokenTTL = 1 * time.Hour

	// BcryptCost is the bcrypt work factor for password hashing. Cost 10
	// puts a single verification in the tens-of-milliseconds range on
	// commodity hardware: slow enough to resist offline brute force,
	// cheap enough not to dominate request latency.
	BcryptCost = 10
)

// # Cross-Origin Resource Sharing

// AllowedOrigins is the static origin allowlist. Additional origins can be
// appended at runtime via the EXTRA_ORIGINS environment variable.
var AllowedOrigins = []string{
	"https://ss-frontend-coral.vercel.app", // Production frontend
	"http://localhost:3000",                // Local development frontend
}

// # Header Names

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderOrigin        = "Origin"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
)

// # JSON Field Identifiers

const (
	FieldData  = "data"
	FieldError = "error"
	FieldCode  = "code"
)
