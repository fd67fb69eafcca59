// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alina Salimova

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// word-inventory server. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token parameters and
	// the application version.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds configuration for the persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Enrich holds configuration for the hosted text-generation service
	// used by the AI enrichment flow.
	Enrich Enrich `envPrefix:"ENRICH_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values controlling the token
// lifecycle and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "24h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the semantic version string of the running application.
	// Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds connection settings for the relational backend.
type Storage struct {
	// Engine selects the storage backend: "postgres" or "sqlite".
	// Env: STORAGE_ENGINE
	Engine string `env:"ENGINE"`

	// DSN is the connection string: a PostgreSQL URI for the postgres
	// engine, or a database file path for sqlite.
	// Env: STORAGE_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// ListingCacheTTL bounds how long a cached entry-listing response stays
	// valid when no write invalidates it first.
	// Env: STORAGE_LISTING_CACHE_TTL
	ListingCacheTTL time.Duration `env:"LISTING_CACHE_TTL"`
}

// Enrich holds settings for the hosted text-generation model call.
type Enrich struct {
	// BaseURL is the root URL of the generation API
	// (e.g. "https://api.openai.com").
	// Env: ENRICH_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// APIKey authenticates requests to the generation API.
	// Env: ENRICH_API_KEY
	APIKey string `env:"API_KEY"`

	// Model is the model identifier sent with every request.
	// Env: ENRICH_MODEL
	Model string `env:"MODEL"`

	// MaxTokens bounds the size of the generated output.
	// Env: ENRICH_MAX_TOKENS
	MaxTokens int `env:"MAX_TOKENS"`

	// Temperature is the sampling temperature; kept low to favor
	// deterministic, parseable output.
	// Env: ENRICH_TEMPERATURE
	Temperature float64 `env:"TEMPERATURE"`

	// Timeout bounds a single generation call. The hosted API has no
	// server-side cancellation contract, so the client imposes one.
	// Env: ENRICH_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first non-zero value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
