// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLockPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "config.json.lock")
}

func TestLockfileGuard_NoMarker(t *testing.T) {
	g := NewLockfileGuard(newLockPath(t))

	assert.False(t, g.IsLocked())
	assert.Zero(t, g.OwnerPID())
}

func TestLockfileGuard_AcquireCreatesMarker(t *testing.T) {
	path := newLockPath(t)
	g := NewLockfileGuard(path)

	require.NoError(t, g.Acquire())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), g.sessionID)
	assert.Equal(t, os.Getpid(), g.OwnerPID())

	// own marker is not a foreign lock
	assert.False(t, g.IsLocked())
	// acquiring twice is a no-op
	assert.NoError(t, g.Acquire())
}

func TestLockfileGuard_CreatesMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "config.json.lock")
	g := NewLockfileGuard(path)

	require.NoError(t, g.Acquire())
	assert.FileExists(t, path)
}

func TestLockfileGuard_ForeignMarker(t *testing.T) {
	path := newLockPath(t)
	owner := NewLockfileGuard(path)
	require.NoError(t, owner.Acquire())

	other := NewLockfileGuard(path)
	assert.True(t, other.IsLocked())

	err := other.Acquire()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLockfileDetected)
	assert.Contains(t, err.Error(), path)

	// a guard that never held the lock must not remove it
	require.NoError(t, other.Release())
	assert.FileExists(t, path)
}

func TestLockfileGuard_ForeignMarkerWithArbitraryContent(t *testing.T) {
	path := newLockPath(t)
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	g := NewLockfileGuard(path)
	assert.True(t, g.IsLocked())
	assert.ErrorIs(t, g.Acquire(), ErrLockfileDetected)
}

func TestLockfileGuard_Release(t *testing.T) {
	path := newLockPath(t)
	g := NewLockfileGuard(path)
	require.NoError(t, g.Acquire())

	require.NoError(t, g.Release())
	assert.NoFileExists(t, path)

	// releasing again is harmless
	assert.NoError(t, g.Release())
}

func TestLockfileGuard_ReleaseKeepsReplacedMarker(t *testing.T) {
	path := newLockPath(t)
	g := NewLockfileGuard(path)
	require.NoError(t, g.Acquire())

	// another process took over the marker in the meantime
	require.NoError(t, os.WriteFile(path, []byte("someone-else\n42\n"), 0o600))

	require.NoError(t, g.Release())
	assert.FileExists(t, path)
	assert.Equal(t, 42, g.OwnerPID())
}

func TestLockfileGuard_ReleaseMissingMarker(t *testing.T) {
	path := newLockPath(t)
	g := NewLockfileGuard(path)
	require.NoError(t, g.Acquire())
	require.NoError(t, os.Remove(path))

	assert.NoError(t, g.Release())
}
