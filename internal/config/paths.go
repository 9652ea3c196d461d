package config

import (
	"os"
	"path/filepath"
)

const (
	// DefaultDirName is the config directory created under the user's home.
	DefaultDirName = ".ledger-keeper"

	// FileName is the name of the preferences file inside the config dir.
	FileName = "config.json"

	// LockSuffix is appended to the config file path to form the lock marker.
	LockSuffix = ".lock"
)

// Paths locates the preferences file and its lock marker. It is computed
// once per invocation and read-only afterwards.
type Paths struct {
	// Dir is the directory holding File and Lock.
	Dir string

	// File is the absolute path of config.json.
	File string

	// Lock is the sibling lock marker, File + LockSuffix.
	Lock string
}

// ResolvePaths computes the config file location. The directory comes from
// settings.ConfigDir when set (flag or env), otherwise from $HOME/.ledger-keeper.
// Without a home directory it falls back to the system temp dir, so it
// always resolves to some path. The lock marker lives next to the file no
// matter where the directory came from.
func ResolvePaths(settings *Settings) Paths {
	dir := ""
	if settings != nil {
		dir = settings.ConfigDir
	}
	if dir == "" {
		dir = defaultDir()
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}

	file := filepath.Join(dir, FileName)
	return Paths{
		Dir:  dir,
		File: file,
		Lock: file + LockSuffix,
	}
}

func defaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(os.TempDir(), DefaultDirName)
	}
	return filepath.Join(home, DefaultDirName)
}
