package store

import (
	"errors"
	"fmt"
)

// Sentinel errors describing well-known failure conditions of the config
// file storage. A [FileError] carries one of them as its Kind, so callers
// match with [errors.Is].
var (
	// ErrLockfileDetected is reported when another process holds the config
	// lock marker. Persistence is disabled for the session.
	ErrLockfileDetected = errors.New("config lockfile detected")

	// ErrUnreadableConfigFile is reported when the config file exists but
	// cannot be read, usually because of its permissions.
	ErrUnreadableConfigFile = errors.New("config file is unreadable")

	// ErrInvalidConfigJSON is reported when the config file is not a JSON
	// object.
	ErrInvalidConfigJSON = errors.New("config file is not valid JSON")

	// ErrPersistFailed is returned when writing the config file failed. The
	// previous file, if any, is left untouched.
	ErrPersistFailed = errors.New("failed to persist config")

	// ErrNotPersisted is returned when persistence was skipped because the
	// session is locked, read-only or non-interactive.
	ErrNotPersisted = errors.New("config was not persisted")
)

// NotPersistedWarning is shown whenever a change stays in memory only.
const NotPersistedWarning = "Your configuration will not be persisted."

// FileError is a config storage failure bound to a path. Error returns the
// message shown to the user.
type FileError struct {
	Kind error
	Path string
	Err  error
}

func (e *FileError) Error() string {
	switch e.Kind {
	case ErrLockfileDetected:
		return fmt.Sprintf("Config lockfile at %s found. Are you running ledger-keeper in another process?", e.Path)
	case ErrUnreadableConfigFile:
		return fmt.Sprintf("Could not read config file. Please check permissions for %s or delete the file so we can create a new one from defaults.", e.Path)
	case ErrInvalidConfigJSON:
		return fmt.Sprintf("Config file is not valid JSON. Please check %s or delete the file so we can create a new one from defaults.", e.Path)
	case ErrPersistFailed:
		return fmt.Sprintf("Could not write to `%s`. %s", e.Path, NotPersistedWarning)
	case ErrNotPersisted:
		return NotPersistedWarning
	default:
		return fmt.Sprintf("%v: %s", e.Kind, e.Path)
	}
}

// Unwrap exposes both the kind and the underlying cause.
func (e *FileError) Unwrap() []error {
	errs := []error{e.Kind}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func lockfileDetected(lockPath string) *FileError {
	return &FileError{Kind: ErrLockfileDetected, Path: lockPath}
}

func notPersisted(path string) *FileError {
	return &FileError{Kind: ErrNotPersisted, Path: path}
}
