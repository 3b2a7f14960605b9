// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Stepanov

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// docvault application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for all persistence backends: the
	// document record database and the PDF file store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Billing holds configuration for the billing platform adapter and
	// the subscription state manager.
	Billing Billing `envPrefix:"BILLING_"`

	// Server holds network address and timeout settings for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all persistence backends used by
// the application.
type Storage struct {
	// DB holds the document record database settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the file-system settings of the PDF vault.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the embedded record database.
type DB struct {
	// DSN is the SQLite Data Source Name: a file path, optionally with
	// driver parameters (e.g. "docvault.db?_busy_timeout=5000").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system settings for the PDF vault.
type Files struct {
	// VaultDir is the base directory of the vault. PDF files live in the
	// "PDFs" subdirectory beneath it, created lazily on first use.
	// Env: STORAGE_FILES_VAULT_DIR
	VaultDir string `env:"VAULT_DIR"`
}

// Billing holds settings for the billing platform adapter and the
// subscription state manager built on top of it.
type Billing struct {
	// BaseURL is the base URL of the billing platform API.
	// Env: BILLING_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds a single billing platform request
	// (e.g. "15s").
	// Env: BILLING_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CatalogAttempts is the fixed ceiling of catalog load attempts
	// before the paywall falls back to hardcoded pricing.
	// Env: BILLING_CATALOG_ATTEMPTS
	CatalogAttempts int `env:"CATALOG_ATTEMPTS"`

	// CatalogRetryDelay is the fixed delay between catalog load attempts
	// (e.g. "2s").
	// Env: BILLING_CATALOG_RETRY_DELAY
	CatalogRetryDelay time.Duration `env:"CATALOG_RETRY_DELAY"`

	// ListenerPollInterval is the interval at which the background
	// transaction listener polls the platform's update feed (e.g. "30s").
	// Env: BILLING_LISTENER_POLL_INTERVAL
	ListenerPollInterval time.Duration `env:"LISTENER_POLL_INTERVAL"`
}

// Server holds network and timeout settings for the inbound HTTP layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "127.0.0.1:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
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
