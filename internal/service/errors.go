package service

import (
	"errors"

	"github.com/MKhiriev/go-ledger-keeper/internal/store"
)

var (
	// ErrValueNotBoolean is returned when a boolean preference is set to
	// anything but "true" or "false".
	ErrValueNotBoolean = errors.New("Value must be a boolean.")

	// ErrUnsupportedQuery is returned for a query kind the client does not
	// know how to look up.
	ErrUnsupportedQuery = errors.New("unsupported query type")

	// ErrEmptyQueryInput is returned when a lookup is given no identifier.
	ErrEmptyQueryInput = errors.New("query input must not be empty")

	// ErrInvalidJSONInput is returned when a broadcast payload is not the
	// expected JSON shape.
	ErrInvalidJSONInput = errors.New("could not parse JSON input")
)

// IsNotPersisted reports whether err only means that a config change was not
// written to disk. Such errors never abort a command.
func IsNotPersisted(err error) bool {
	return errors.Is(err, store.ErrNotPersisted) || errors.Is(err, store.ErrPersistFailed)
}
