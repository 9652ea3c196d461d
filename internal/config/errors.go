package config

import "errors"

// Validation errors returned by [Settings.validate].
var (
	// ErrInvalidSettings indicates an invalid general setting such as an
	// unknown log level.
	ErrInvalidSettings = errors.New("invalid settings")
	// ErrInvalidAdapterConfigs indicates invalid ledger API settings
	// (for example, a missing node address or non-positive timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
