// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the merged [Settings] can be used to start the
// client.
func (cfg *Settings) validate() error {
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidSettings, cfg.LogLevel)
	}

	if cfg.Adapter.MainnetAddress == "" || cfg.Adapter.TestnetAddress == "" {
		return fmt.Errorf("%w: node addresses are required", ErrInvalidAdapterConfigs)
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	return nil
}
