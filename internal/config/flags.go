package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names registered by [RegisterFlags].
const (
	FlagConfigDir      = "config-dir"
	FlagNonInteractive = "non-interactive"
	FlagLogLevel       = "log-level"
	FlagMainnetNode    = "mainnet-node"
	FlagTestnetNode    = "testnet-node"
	FlagRequestTimeout = "request-timeout"
)

// RegisterFlags declares the settings flags on fs. Cobra commands pass their
// persistent flag set so every sub-command accepts them.
//
// Flags:
//
//	--config-dir       directory holding config.json
//	--non-interactive  never write the config file
//	--log-level        zerolog level (debug, info, warn, error)
//	--mainnet-node     mainnet node address
//	--testnet-node     testnet node address
//	--request-timeout  API request timeout (e.g. 10s)
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(FlagConfigDir, "", "Directory holding config.json")
	fs.Bool(FlagNonInteractive, false, "Do not write the config file during this invocation")
	fs.String(FlagLogLevel, "", "Log level: debug, info, warn, error")
	fs.String(FlagMainnetNode, "", "Mainnet node address host:port or URL")
	fs.String(FlagTestnetNode, "", "Testnet node address host:port or URL")
	fs.Duration(FlagRequestTimeout, 0, "API request timeout (e.g. 10s)")
}

// parseFlags reads the settings flags from an already parsed fs. Flags that
// were never declared on fs are left at their zero value.
func parseFlags(fs *pflag.FlagSet) (*Settings, error) {
	cfg := &Settings{}
	if fs == nil {
		return cfg, nil
	}

	var err error
	if fs.Lookup(FlagConfigDir) != nil {
		if cfg.ConfigDir, err = fs.GetString(FlagConfigDir); err != nil {
			return nil, fmt.Errorf("error reading --%s: %w", FlagConfigDir, err)
		}
	}
	if fs.Lookup(FlagNonInteractive) != nil {
		if cfg.NonInteractive, err = fs.GetBool(FlagNonInteractive); err != nil {
			return nil, fmt.Errorf("error reading --%s: %w", FlagNonInteractive, err)
		}
	}
	if fs.Lookup(FlagLogLevel) != nil {
		if cfg.LogLevel, err = fs.GetString(FlagLogLevel); err != nil {
			return nil, fmt.Errorf("error reading --%s: %w", FlagLogLevel, err)
		}
	}
	if fs.Lookup(FlagMainnetNode) != nil {
		if cfg.Adapter.MainnetAddress, err = fs.GetString(FlagMainnetNode); err != nil {
			return nil, fmt.Errorf("error reading --%s: %w", FlagMainnetNode, err)
		}
	}
	if fs.Lookup(FlagTestnetNode) != nil {
		if cfg.Adapter.TestnetAddress, err = fs.GetString(FlagTestnetNode); err != nil {
			return nil, fmt.Errorf("error reading --%s: %w", FlagTestnetNode, err)
		}
	}
	if fs.Lookup(FlagRequestTimeout) != nil {
		if cfg.Adapter.RequestTimeout, err = fs.GetDuration(FlagRequestTimeout); err != nil {
			return nil, fmt.Errorf("error reading --%s: %w", FlagRequestTimeout, err)
		}
	}

	return cfg, nil
}
