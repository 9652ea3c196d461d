// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/MKhiriev/go-ledger-keeper/internal/utils"
)

// LockfileGuard is an advisory, cooperative lock on the config directory.
//
// The lock is a marker file next to the config file. Its content is the
// session id of the owning process followed by its pid; a marker carrying
// our own session id never counts as a foreign lock. The guard never waits
// or retries.
type LockfileGuard struct {
	path      string
	sessionID string
	held      bool
}

// NewLockfileGuard constructs a guard for the marker at path with a fresh
// random session id.
func NewLockfileGuard(path string) *LockfileGuard {
	return &LockfileGuard{
		path:      path,
		sessionID: utils.NewSessionID(),
	}
}

// Path returns the marker location.
func (g *LockfileGuard) Path() string {
	return g.path
}

// IsLocked reports whether a marker created by another process exists.
// A marker that exists but cannot be read is treated as foreign.
func (g *LockfileGuard) IsLocked() bool {
	data, err := os.ReadFile(g.path)
	if errors.Is(err, fs.ErrNotExist) {
		return false
	}
	if err != nil {
		return true
	}
	return !g.ownedBy(data)
}

// Acquire creates the marker. It returns a *FileError of kind
// ErrLockfileDetected when another process holds it. Acquiring a lock the
// guard already holds is a no-op.
func (g *LockfileGuard) Acquire() error {
	if g.held {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(g.path), 0o700); err != nil {
		return fmt.Errorf("creating lock directory: %w", err)
	}

	f, err := os.OpenFile(g.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if errors.Is(err, fs.ErrExist) {
		if g.IsLocked() {
			return lockfileDetected(g.path)
		}
		g.held = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("creating lockfile: %w", err)
	}

	_, writeErr := fmt.Fprintf(f, "%s\n%d\n", g.sessionID, os.Getpid())
	closeErr := f.Close()
	if err = errors.Join(writeErr, closeErr); err != nil {
		_ = os.Remove(g.path)
		return fmt.Errorf("writing lockfile: %w", err)
	}

	g.held = true
	return nil
}

// Release removes the marker if it still carries our session id. Markers of
// other processes are never removed.
func (g *LockfileGuard) Release() error {
	if !g.held {
		return nil
	}
	g.held = false

	data, err := os.ReadFile(g.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading lockfile: %w", err)
	}
	if !g.ownedBy(data) {
		return nil
	}

	if err := os.Remove(g.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing lockfile: %w", err)
	}
	return nil
}

func (g *LockfileGuard) ownedBy(data []byte) bool {
	id, _, _ := bytes.Cut(data, []byte("\n"))
	return string(bytes.TrimSpace(id)) == g.sessionID
}

// lockOwnerPID returns the pid recorded in a marker, or 0 if absent.
func lockOwnerPID(data []byte) int {
	_, rest, ok := bytes.Cut(data, []byte("\n"))
	if !ok {
		return 0
	}
	pid, err := strconv.Atoi(string(bytes.TrimSpace(rest)))
	if err != nil {
		return 0
	}
	return pid
}

// OwnerPID returns the pid recorded in the current marker, or 0 when there
// is no readable marker.
func (g *LockfileGuard) OwnerPID() int {
	data, err := os.ReadFile(g.path)
	if err != nil {
		return 0
	}
	return lockOwnerPID(data)
}
