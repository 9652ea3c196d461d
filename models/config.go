// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

// Well-known preference keys of the default configuration.
const (
	// ConfigKeyName is the display name of the client.
	ConfigKeyName = "name"

	// ConfigKeyJSON switches command output to JSON when true.
	ConfigKeyJSON = "json"

	// ConfigKeyPretty indents JSON output when true.
	ConfigKeyPretty = "pretty"

	// ConfigKeyAPI is the section holding ledger node settings.
	ConfigKeyAPI = "api"

	// ConfigKeyAPITestnet routes API calls to the test network when true.
	ConfigKeyAPITestnet = "api.testnet"

	// ConfigKeyAPINode overrides the ledger node address ("host:port" or URL).
	ConfigKeyAPINode = "api.node"

	// ConfigKeyAPISSL selects https for an api.node given without a scheme.
	ConfigKeyAPISSL = "api.ssl"
)

var (
	// ErrInvalidPath is returned when a variable path is empty or malformed.
	ErrInvalidPath = errors.New("invalid variable path")

	// ErrVariableNotFound is returned when a path does not address any node.
	ErrVariableNotFound = errors.New("config variable not found")
)

// DefaultConfig returns a fresh copy of the canonical default preferences.
// Each call builds a new tree, so callers can never mutate the canonical
// defaults through the returned value.
func DefaultConfig() *Config {
	return NodeFromValue(map[string]any{
		ConfigKeyName:   "ledger-keeper",
		ConfigKeyJSON:   false,
		ConfigKeyPretty: false,
		ConfigKeyAPI: map[string]any{
			"testnet": false,
			"node":    "",
			"ssl":     false,
		},
	})
}

// BoolAt returns the boolean stored at the dot-path key, or fallback if the
// key is missing or not a boolean.
func (n *Node) BoolAt(key string, fallback bool) bool {
	path, err := ParseVariablePath(key)
	if err != nil {
		return fallback
	}
	node, err := n.Get(path)
	if err != nil || node.Kind() != KindLeaf {
		return fallback
	}
	if b, ok := node.value.(bool); ok {
		return b
	}
	return fallback
}

// StringAt returns the string stored at the dot-path key, or fallback if the
// key is missing or not a string.
func (n *Node) StringAt(key string, fallback string) string {
	path, err := ParseVariablePath(key)
	if err != nil {
		return fallback
	}
	node, err := n.Get(path)
	if err != nil || node.Kind() != KindLeaf {
		return fallback
	}
	if s, ok := node.value.(string); ok {
		return s
	}
	return fallback
}
