// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-web-server application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file and finally the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token signing parameters and the application version.
	App App `envPrefix:"APP_"`

	// Cookie holds the identity cookie policy.
	Cookie Cookie `envPrefix:"COOKIE_"`

	// Storage holds configuration for the relational database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address, static asset root and timeout settings
	// for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control token
// issuance and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify identity tokens.
	// Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token and
	// validated on every request.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long an identity token remains valid after
	// issuance (e.g. "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// DevSeed creates the demo account on startup. Never enable in production.
	// Env: APP_DEV_SEED
	DevSeed bool `env:"DEV_SEED"`
}

// Cookie holds the identity cookie policy shared by the login handler and
// the context resolver.
type Cookie struct {
	// Name of the identity cookie.
	// Env: COOKIE_NAME
	Name string `env:"NAME"`

	// Path scopes the cookie.
	// Env: COOKIE_PATH
	Path string `env:"PATH"`

	// Domain scopes the cookie to a domain; empty means host-only.
	// Env: COOKIE_DOMAIN
	Domain string `env:"DOMAIN"`

	// Secure restricts the cookie to HTTPS connections.
	// Env: COOKIE_SECURE
	Secure bool `env:"SECURE"`

	// SameSite is one of "lax", "strict" or "none".
	// Env: COOKIE_SAME_SITE
	SameSite string `env:"SAME_SITE"`

	// RefreshWindow re-issues the cookie when the remaining lifetime of the
	// presented token drops below this value. Zero re-issues it on every
	// authenticated request.
	// Env: COOKIE_REFRESH_WINDOW
	RefreshWindow time.Duration `env:"REFRESH_WINDOW"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "127.0.0.1:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// StaticDir is the directory served by the static fallback route.
	// Env: SERVER_STATIC_DIR
	StaticDir string `env:"STATIC_DIR"`

	// RequestTimeout bounds reading and writing of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// EnableMetrics exposes the Prometheus registry on GET /metrics.
	// Env: SERVER_ENABLE_METRICS
	EnableMetrics bool `env:"ENABLE_METRICS"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the PostgreSQL Data Source Name (connection string).
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources. For every field the first
// source providing a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder(os.Args[1:]).
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
