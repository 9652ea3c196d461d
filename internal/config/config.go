// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// EnvPrefix is prepended to every environment variable read by [parseEnv].
const EnvPrefix = "LEDGER_KEEPER_"

// Settings is the runtime configuration of a single client invocation.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: environment variable name for scalar fields, relative to
//     [EnvPrefix].
type Settings struct {
	// ConfigDir overrides the directory holding config.json and its lock
	// marker. Empty means the platform default, see [ResolvePaths].
	// Env: LEDGER_KEEPER_CONFIG_DIR
	ConfigDir string `env:"CONFIG_DIR"`

	// NonInteractive marks an invocation that must not write the config
	// file (scripts, CI, read-only environments). Preferences are still
	// loaded; changes only live in memory.
	// Env: LEDGER_KEEPER_NON_INTERACTIVE
	NonInteractive bool `env:"NON_INTERACTIVE"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LEDGER_KEEPER_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Adapter holds ledger node addresses and timeouts.
	Adapter Adapter `envPrefix:"API_"`
}

// Adapter holds settings of the outbound ledger API client.
type Adapter struct {
	// MainnetAddress is the node used when testnet mode is off.
	// Env: LEDGER_KEEPER_API_MAINNET_ADDRESS
	MainnetAddress string `env:"MAINNET_ADDRESS"`

	// TestnetAddress is the node used when testnet mode is on.
	// Env: LEDGER_KEEPER_API_TESTNET_ADDRESS
	TestnetAddress string `env:"TESTNET_ADDRESS"`

	// RequestTimeout bounds a single API request (e.g. "10s").
	// Env: LEDGER_KEEPER_API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Defaults returns the built-in settings used to fill anything not given
// by flags or environment.
func Defaults() *Settings {
	return &Settings{
		LogLevel: "warn",
		Adapter: Adapter{
			MainnetAddress: "http://localhost:8000",
			TestnetAddress: "http://localhost:7000",
			RequestTimeout: 10 * time.Second,
		},
	}
}

// GetSettings loads, merges, and validates the runtime settings from the
// already parsed flag set fs, the environment, and the defaults.
func GetSettings(fs *pflag.FlagSet) (*Settings, error) {
	settings, err := newConfigBuilder().
		withFlags(fs).
		withEnv().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get settings: %w", err)
	}

	return settings, nil
}
