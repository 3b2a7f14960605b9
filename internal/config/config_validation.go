// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Stepanov

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.Files.VaultDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Billing.BaseURL == "" || cfg.Billing.RequestTimeout == 0 {
		return ErrInvalidBillingConfigs
	}

	if cfg.Billing.CatalogAttempts <= 0 || cfg.Billing.CatalogRetryDelay <= 0 {
		return ErrInvalidBillingConfigs
	}

	if cfg.Billing.ListenerPollInterval <= 0 {
		return ErrInvalidBillingConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
