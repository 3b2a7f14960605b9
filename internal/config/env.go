// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Stepanov

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. Fields resolve through
// the `env` and `envPrefix` tags declared on [StructuredConfig] and its
// nested sections, so prefixed variables such as BILLING_BASE_URL land on
// the right field without any switch statements here.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parsing environment config: %w", err)
	}

	return nil
}
