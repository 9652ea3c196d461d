// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Every variable name is prefixed with [EnvPrefix]; struct fields
// are mapped via their `env` and `envPrefix` tags defined on [Settings].
//
// Returns a wrapped error if a value cannot be converted to the target type
// (e.g. an unparsable duration or boolean).
func parseEnv(cfg any) error {
	err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
