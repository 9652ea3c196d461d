package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/validators"
	"github.com/MKhiriev/go-ledger-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

type testEnv struct {
	dir  string
	file string
	lock string
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	dir := t.TempDir()
	file := filepath.Join(dir, "config.json")
	return testEnv{dir: dir, file: file, lock: file + ".lock"}
}

func (e testEnv) storage(readOnly bool) *ConfigFileStorage {
	return NewConfigFileStorage(e.file, NewLockfileGuard(e.lock), validators.NewConfigValidator(), readOnly, logger.Nop())
}

func (e testEnv) write(t *testing.T, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(e.file, []byte(content), 0o600))
}

func (e testEnv) readTree(t *testing.T) *models.Node {
	t.Helper()
	data, err := os.ReadFile(e.file)
	require.NoError(t, err)
	tree := new(models.Node)
	require.NoError(t, json.Unmarshal(data, tree))
	return tree
}

func (e testEnv) lockByOtherProcess(t *testing.T) {
	t.Helper()
	require.NoError(t, os.WriteFile(e.lock, []byte("other-session\n4242\n"), 0o600))
}

func countReports(res LoadResult, target error) int {
	n := 0
	for _, r := range res.Reports {
		if isErr(r, target) {
			n++
		}
	}
	return n
}

func isErr(err, target error) bool {
	fe, ok := err.(*FileError)
	return ok && fe.Kind == target
}

func mustNode(t *testing.T, raw string) *models.Node {
	t.Helper()
	n := new(models.Node)
	require.NoError(t, json.Unmarshal([]byte(raw), n))
	return n
}

// ── Load ──────────────────────────────────────────────────────────────────────

func TestLoad_FirstRunWritesDefaults(t *testing.T) {
	env := newTestEnv(t)
	s := env.storage(false)

	res := s.Load(context.Background(), models.DefaultConfig())

	assert.Empty(t, res.Reports)
	assert.True(t, res.Persistable)
	assert.True(t, res.Config.Equal(models.DefaultConfig()))
	assert.True(t, env.readTree(t).Equal(models.DefaultConfig()))

	info, err := os.Stat(env.file)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestLoad_FirstRunCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "fresh", ".ledger-keeper")
	file := filepath.Join(dir, "config.json")
	s := NewConfigFileStorage(file, NewLockfileGuard(file+".lock"), validators.NewConfigValidator(), false, logger.Nop())

	res := s.Load(context.Background(), models.DefaultConfig())

	assert.Empty(t, res.Reports)
	assert.FileExists(t, file)
}

func TestLoad_FirstRunReadOnly(t *testing.T) {
	env := newTestEnv(t)
	s := env.storage(true)

	res := s.Load(context.Background(), models.DefaultConfig())

	assert.Empty(t, res.Reports)
	assert.False(t, res.Persistable)
	assert.True(t, res.Config.Equal(models.DefaultConfig()))
	assert.NoFileExists(t, env.file)
}

func TestLoad_PartialOverlayKeepsDefaults(t *testing.T) {
	env := newTestEnv(t)
	env.write(t, `{"json": true}`)

	res := env.storage(false).Load(context.Background(), models.DefaultConfig())

	require.Empty(t, res.Reports)
	assert.True(t, res.Config.BoolAt("json", false))
	assert.False(t, res.Config.BoolAt("api.testnet", true))

	api, err := res.Config.Get(models.VariablePath{"api"})
	require.NoError(t, err)
	defaultAPI, _ := models.DefaultConfig().Get(models.VariablePath{"api"})
	assert.True(t, api.Equal(defaultAPI))
}

func TestLoad_UnknownKeysPreserved(t *testing.T) {
	env := newTestEnv(t)
	env.write(t, `{"custom": {"nested": [1, 2, 3]}, "amount": 12345678901234567890}`)

	res := env.storage(false).Load(context.Background(), models.DefaultConfig())

	require.Empty(t, res.Reports)
	nested, err := res.Config.Get(models.VariablePath{"custom", "nested"})
	require.NoError(t, err)
	assert.Equal(t, models.KindLeaf, nested.Kind())

	amount, err := res.Config.Get(models.VariablePath{"amount"})
	require.NoError(t, err)
	assert.Equal(t, json.Number("12345678901234567890"), amount.Value())
}

func TestLoad_InvalidJSON(t *testing.T) {
	for name, content := range map[string]string{
		"syntax error":   `{"json": tru`,
		"empty file":     ``,
		"top-level list": `[1, 2]`,
		"top-level str":  `"hello"`,
		"trailing data":  `{"json": true} {}`,
	} {
		t.Run(name, func(t *testing.T) {
			env := newTestEnv(t)
			env.write(t, content)

			res := env.storage(false).Load(context.Background(), models.DefaultConfig())

			assert.True(t, res.Config.Equal(models.DefaultConfig()))
			require.Len(t, res.Reports, 1)
			assert.Equal(t, 1, countReports(res, ErrInvalidConfigJSON))
			assert.ErrorIs(t, res.Reports[0], ErrInvalidConfigJSON)
			assert.Contains(t, res.Reports[0].Error(), env.file)
			assert.False(t, res.Persistable)

			// the broken file is left for the user to inspect
			data, err := os.ReadFile(env.file)
			require.NoError(t, err)
			assert.Equal(t, content, string(data))
		})
	}
}

func TestLoad_UnreadableFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("file permissions are not enforced for root")
	}

	env := newTestEnv(t)
	env.write(t, `{"json": true}`)
	require.NoError(t, os.Chmod(env.file, 0o000))
	t.Cleanup(func() { _ = os.Chmod(env.file, 0o600) })

	res := env.storage(false).Load(context.Background(), models.DefaultConfig())

	assert.True(t, res.Config.Equal(models.DefaultConfig()))
	require.Len(t, res.Reports, 1)
	assert.ErrorIs(t, res.Reports[0], ErrUnreadableConfigFile)
	assert.Contains(t, res.Reports[0].Error(), env.file)
	assert.False(t, res.Persistable)
}

func TestLoad_PathIsDirectory(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, os.Mkdir(env.file, 0o700))

	res := env.storage(false).Load(context.Background(), models.DefaultConfig())

	assert.True(t, res.Config.Equal(models.DefaultConfig()))
	require.Len(t, res.Reports, 1)
	assert.ErrorIs(t, res.Reports[0], ErrUnreadableConfigFile)
}

func TestLoad_ForeignLock(t *testing.T) {
	env := newTestEnv(t)
	env.write(t, `{"json": true, "api": {"testnet": true}}`)

	unlocked := env.storage(false).Load(context.Background(), models.DefaultConfig())
	require.Empty(t, unlocked.Reports)

	env.lockByOtherProcess(t)
	before, err := os.ReadFile(env.file)
	require.NoError(t, err)

	s := env.storage(false)
	locked := s.Load(context.Background(), models.DefaultConfig())

	assert.True(t, locked.HasReport(ErrLockfileDetected))
	assert.True(t, locked.HasReport(ErrNotPersisted))
	assert.Equal(t, 1, countReports(locked, ErrLockfileDetected))
	assert.Contains(t, locked.Reports[0].Error(), env.lock)
	assert.False(t, locked.Persistable)
	assert.True(t, locked.Config.Equal(unlocked.Config))

	// no write ever reaches the file
	require.NoError(t, locked.Config.Set(models.VariablePath{"json"}, models.NewLeaf(false)))
	err = s.Persist(context.Background(), locked.Config)
	assert.ErrorIs(t, err, ErrNotPersisted)

	after, err := os.ReadFile(env.file)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestLoad_ForeignLockWithoutFile(t *testing.T) {
	env := newTestEnv(t)
	env.lockByOtherProcess(t)

	res := env.storage(false).Load(context.Background(), models.DefaultConfig())

	assert.True(t, res.HasReport(ErrLockfileDetected))
	assert.True(t, res.Config.Equal(models.DefaultConfig()))
	assert.NoFileExists(t, env.file)
}

func TestLoad_DoesNotAliasDefaults(t *testing.T) {
	env := newTestEnv(t)
	defaults := models.DefaultConfig()

	res := env.storage(true).Load(context.Background(), defaults)
	require.NoError(t, res.Config.Set(models.VariablePath{"api", "testnet"}, models.NewLeaf(true)))

	assert.False(t, defaults.BoolAt("api.testnet", true))
}

// ── Persist ───────────────────────────────────────────────────────────────────

func TestPersist_SetThenReload(t *testing.T) {
	env := newTestEnv(t)
	s := env.storage(false)
	res := s.Load(context.Background(), models.DefaultConfig())

	require.NoError(t, res.Config.Set(models.VariablePath{"api", "testnet"}, models.NewLeaf(true)))
	require.NoError(t, s.Persist(context.Background(), res.Config))

	assert.True(t, env.readTree(t).Equal(res.Config))

	second := env.storage(false).Load(context.Background(), models.DefaultConfig())
	require.Empty(t, second.Reports)
	assert.True(t, second.Config.Equal(res.Config))
	assert.True(t, second.Config.BoolAt("api.testnet", false))
	assert.False(t, second.Config.BoolAt("json", true))
}

func TestPersist_RoundTripKeepsStructure(t *testing.T) {
	env := newTestEnv(t)
	original := `{"json":true,"api":{"testnet":true,"extra":{"x":[1,{"y":null}]}},"name":"mine","n":1.50}`
	env.write(t, original)

	s := env.storage(false)
	res := s.Load(context.Background(), models.DefaultConfig())
	require.Empty(t, res.Reports)
	require.NoError(t, s.Persist(context.Background(), res.Config))

	expected := models.Merge(models.DefaultConfig(), mustNode(t, original))
	assert.True(t, env.readTree(t).Equal(expected))
}

func TestPersist_ReadOnly(t *testing.T) {
	env := newTestEnv(t)
	s := env.storage(true)

	err := s.Persist(context.Background(), models.DefaultConfig())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotPersisted)
	assert.Equal(t, NotPersistedWarning, err.Error())
	assert.NoFileExists(t, env.file)
}

func TestPersist_LockAppearsMidSession(t *testing.T) {
	env := newTestEnv(t)
	s := env.storage(false)
	res := s.Load(context.Background(), models.DefaultConfig())
	require.True(t, res.Persistable)

	env.lockByOtherProcess(t)

	err := s.Persist(context.Background(), res.Config)
	assert.ErrorIs(t, err, ErrNotPersisted)
	assert.ErrorIs(t, err, ErrLockfileDetected)
	assert.Contains(t, err.Error(), "Config lockfile at "+env.lock+" found.")
	assert.Contains(t, err.Error(), NotPersistedWarning)

	// the lock is checked at every persist, so its removal restores writes
	require.NoError(t, os.Remove(env.lock))
	assert.NoError(t, s.Persist(context.Background(), res.Config))
}

func TestPersist_OwnLockDoesNotBlock(t *testing.T) {
	env := newTestEnv(t)
	lock := NewLockfileGuard(env.lock)
	s := NewConfigFileStorage(env.file, lock, validators.NewConfigValidator(), false, logger.Nop())

	res := s.Load(context.Background(), models.DefaultConfig())
	require.NoError(t, lock.Acquire())
	t.Cleanup(func() { _ = lock.Release() })

	assert.NoError(t, s.Persist(context.Background(), res.Config))
}

func TestPersist_WriteFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	file := filepath.Join(blocker, "config.json")
	s := NewConfigFileStorage(file, NewLockfileGuard(filepath.Join(dir, "config.json.lock")), validators.NewConfigValidator(), false, logger.Nop())

	err := s.Persist(context.Background(), models.DefaultConfig())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPersistFailed)
	assert.Equal(t, "Could not write to `"+file+"`. Your configuration will not be persisted.", err.Error())
}

// ── atomicWriteFile ───────────────────────────────────────────────────────────

func TestAtomicWriteFile_ReplacesWithoutLeftovers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	require.NoError(t, atomicWriteFile(path, []byte("new"), 0o600))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestAtomicWriteFile_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "config.json")

	err := atomicWriteFile(path, []byte("{}"), 0o600)

	assert.Error(t, err)
	assert.NoFileExists(t, path)
}
