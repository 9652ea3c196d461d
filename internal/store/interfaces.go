// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store keeps the user preferences file on disk.
//
// Loading never fails: every problem with the file is reported and the
// session continues with the defaults. Writes go through a temp file and a
// rename, so a failed write never leaves a truncated config behind.
package store

import (
	"context"

	"github.com/MKhiriev/go-ledger-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ConfigStorage loads and persists the live configuration.
type ConfigStorage interface {
	// Load reads the config file and merges it over defaults.
	Load(ctx context.Context, defaults *models.Config) LoadResult
	// Persist writes cfg to disk. Skipped writes return ErrNotPersisted,
	// failed writes ErrPersistFailed.
	Persist(ctx context.Context, cfg *models.Config) error
	// Persistable reports whether Persist would attempt a write.
	Persistable() bool
	// Path returns the config file location.
	Path() string
}

// Locker guards the config directory against concurrent writers.
type Locker interface {
	Path() string
	IsLocked() bool
	OwnerPID() int
	Acquire() error
	Release() error
}
