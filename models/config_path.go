package models

import (
	"fmt"
	"strings"
)

// VariablePath is an ordered list of keys addressing a node inside a
// [Config], e.g. ["api", "testnet"] for the dot-path "api.testnet".
type VariablePath []string

// ParseVariablePath splits a dot-path into its segments.
//
// Returns [ErrInvalidPath] if raw is blank or contains an empty segment
// (leading, trailing or doubled dots).
func ParseVariablePath(raw string) (VariablePath, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	path := VariablePath(strings.Split(raw, "."))
	if err := path.Validate(); err != nil {
		return nil, err
	}
	return path, nil
}

// Validate checks that the path has at least one segment and no empty
// segments.
func (p VariablePath) Validate() error {
	if len(p) == 0 {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	for _, segment := range p {
		if strings.TrimSpace(segment) == "" {
			return fmt.Errorf("%w: empty segment in %q", ErrInvalidPath, strings.Join(p, "."))
		}
	}
	return nil
}

// String joins the path back into its dot form.
func (p VariablePath) String() string {
	return strings.Join(p, ".")
}
