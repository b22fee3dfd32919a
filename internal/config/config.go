// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration of the ride-share server.
// It is populated by merging built-in defaults, an optional .env file,
// environment variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds security and logging settings.
	App App `envPrefix:"APP_"`

	// Server holds the HTTP listen address and request timeout.
	Server Server `envPrefix:"SERVER_"`

	// Catalog points at an optional location catalog file.
	Catalog Catalog `envPrefix:"CATALOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// TokenSignKey is the process-wide secret used to sign and verify
	// session tokens. Required.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token and
	// checked on every authenticated request.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// PasswordHashCost is the bcrypt cost factor used at signup.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on,
	// in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Catalog configures the location catalog.
type Catalog struct {
	// FilePath is a JSON file mapping region names to city lists. When
	// empty, the built-in catalog is used.
	// Env: CATALOG_FILE_PATH
	FilePath string `env:"FILE_PATH"`
}

// GetStructuredConfig loads, merges and validates the configuration.
// Sources are applied in this order, later non-zero values winning:
//  1. Built-in defaults
//  2. .env file in the working directory (if present)
//  3. Environment variables
//  4. Command-line flags
//  5. JSON file (path resolved from sources 3 and 4)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(dotEnvFile).
		withEnv().
		withFlags().
		withJSON().
		build()
}
