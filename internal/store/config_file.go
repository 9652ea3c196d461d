package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/validators"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

const (
	configFileMode = 0o600
	configDirMode  = 0o700
)

// LoadResult is the outcome of [ConfigFileStorage.Load]. Config is always
// usable; Reports lists every non-fatal problem met on the way.
type LoadResult struct {
	Config      *models.Config
	Persistable bool
	Reports     []error
}

// HasReport reports whether any report matches target.
func (r LoadResult) HasReport(target error) bool {
	for _, report := range r.Reports {
		if errors.Is(report, target) {
			return true
		}
	}
	return false
}

// ConfigFileStorage is the JSON file backed [ConfigStorage].
type ConfigFileStorage struct {
	path        string
	lock        Locker
	validator   validators.Validator
	logger      *logger.Logger
	persistable bool
}

// NewConfigFileStorage constructs a storage for the file at path guarded by
// lock. A readOnly storage loads normally but never writes.
func NewConfigFileStorage(path string, lock Locker, validator validators.Validator, readOnly bool, logger *logger.Logger) *ConfigFileStorage {
	return &ConfigFileStorage{
		path:        path,
		lock:        lock,
		validator:   validator,
		logger:      logger,
		persistable: !readOnly,
	}
}

// Path implements [ConfigStorage].
func (s *ConfigFileStorage) Path() string {
	return s.path
}

// Persistable implements [ConfigStorage].
func (s *ConfigFileStorage) Persistable() bool {
	return s.persistable
}

// Load implements [ConfigStorage].
//
// The returned config is always a fresh tree: the merge of the file over
// defaults on success, a clone of defaults otherwise. A foreign lock disables
// persistence but the file is still read, so the session sees the same
// config it would have seen without the lock. A missing file is created
// from defaults when the storage is persistable. An unreadable or malformed
// file disables persistence, so it is never overwritten behind the user's
// back.
func (s *ConfigFileStorage) Load(ctx context.Context, defaults *models.Config) LoadResult {
	res := LoadResult{Config: defaults.Clone()}

	if s.lock.IsLocked() {
		s.persistable = false
		s.logger.Debug().Int("owner_pid", s.lock.OwnerPID()).Msg("foreign config lock")
		res.report(s.logger, lockfileDetected(s.lock.Path()))
		res.report(s.logger, notPersisted(s.path))
	}

	data, err := os.ReadFile(s.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		s.logger.Debug().Str("path", s.path).Msg("config file not found, using defaults")
		if s.persistable {
			if err := s.write(res.Config); err != nil {
				s.persistable = false
				res.report(s.logger, &FileError{Kind: ErrPersistFailed, Path: s.path, Err: err})
			}
		}
		res.Persistable = s.persistable
		return res
	case err != nil:
		s.persistable = false
		res.report(s.logger, &FileError{Kind: ErrUnreadableConfigFile, Path: s.path, Err: err})
		return res
	}

	parsed, err := s.parse(ctx, data)
	if err != nil {
		s.persistable = false
		res.report(s.logger, &FileError{Kind: ErrInvalidConfigJSON, Path: s.path, Err: err})
		return res
	}

	res.Config = models.Merge(defaults, parsed)
	res.Persistable = s.persistable
	return res
}

// Persist implements [ConfigStorage].
//
// Skipped writes are returned, not logged: the caller shows the warning. A
// lock taken by another process after Load yields both the lockfile report
// and the not-persisted warning.
func (s *ConfigFileStorage) Persist(_ context.Context, cfg *models.Config) error {
	if s.lock.IsLocked() {
		s.logger.Debug().Int("owner_pid", s.lock.OwnerPID()).Msg("foreign config lock, change kept in memory")
		return errors.Join(lockfileDetected(s.lock.Path()), notPersisted(s.path))
	}
	if !s.persistable {
		s.logger.Debug().Str("path", s.path).Msg("persistence disabled, change kept in memory")
		return notPersisted(s.path)
	}

	if err := s.write(cfg); err != nil {
		s.logger.Debug().Err(err).Str("path", s.path).Msg("config write failed")
		return &FileError{Kind: ErrPersistFailed, Path: s.path, Err: err}
	}

	s.logger.Debug().Str("path", s.path).Msg("config persisted")
	return nil
}

func (s *ConfigFileStorage) parse(ctx context.Context, data []byte) (*models.Node, error) {
	parsed := new(models.Node)
	if err := json.Unmarshal(data, parsed); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := s.validator.Validate(ctx, parsed, validators.FieldRoot, validators.FieldDepth); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return parsed, nil
}

func (s *ConfigFileStorage) write(cfg *models.Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(s.path), configDirMode); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return atomicWriteFile(s.path, data, configFileMode)
}

func (r *LoadResult) report(log *logger.Logger, err *FileError) {
	r.Reports = append(r.Reports, err)

	switch err.Kind {
	case ErrUnreadableConfigFile, ErrInvalidConfigJSON:
		log.Error().AnErr("cause", err.Err).Msg(err.Error())
	default:
		log.Warn().Msg(err.Error())
	}
}

// atomicWriteFile replaces path with data. The content is written to a temp
// file in the same directory, synced, chmodded and renamed over path; on any
// failure the temp file is removed and path keeps its previous content.
func atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	tempPath := tempFile.Name()
	defer os.Remove(tempPath)

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Chmod(tempPath, perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}
